// internal/cli/messages.go

package cli

import (
	"os"
	"strings"
)

// catalog holds every user-facing message in one swappable table.
// HVCTL_LANG=zh selects the Chinese catalog; anything else gets English.
type catalog struct {
	noWorkspace string

	envFresh     string
	envBootstrap string
	envReady     string

	configCreated    string
	configExists     string
	configSkipped    string
	configOverwrote  string
	warnNoTemplate   string
	warnConfigAbsent string

	cleanSecondary        string
	cleanSecondarySkipped string
}

var enCatalog = catalog{
	noWorkspace: "not inside a hypervisor workspace (scripts/task.py not found)",

	envFresh:     "✅ tool environment is up to date",
	envBootstrap: "🔧 bootstrapping tool environment...",
	envReady:     "✅ tool environment ready",

	configCreated:    "📝 created %s from default template",
	configExists:     "ℹ️  %s already matches the default template, leaving it untouched",
	configSkipped:    "ℹ️  keeping existing %s",
	configOverwrote:  "📝 wrote default configuration to %s",
	warnNoTemplate:   "no default template at %s; cannot create a config",
	warnConfigAbsent: "⚠️  no %s and no default template; proceeding without one",

	cleanSecondary:        "🧹 cleaning cargo build cache...",
	cleanSecondarySkipped: "ℹ️  cargo not found, skipping build cache cleanup",
}

var zhCatalog = catalog{
	noWorkspace: "不在 hypervisor 工作区内（未找到 scripts/task.py）",

	envFresh:     "✅ 工具环境已是最新",
	envBootstrap: "🔧 正在引导工具环境...",
	envReady:     "✅ 工具环境就绪",

	configCreated:    "📝 已从默认模板创建 %s",
	configExists:     "ℹ️  %s 已与默认模板一致，保持不变",
	configSkipped:    "ℹ️  保留现有的 %s",
	configOverwrote:  "📝 已将默认配置写入 %s",
	warnNoTemplate:   "找不到默认模板 %s，无法创建配置",
	warnConfigAbsent: "⚠️  缺少 %s 且无默认模板，继续执行",

	cleanSecondary:        "🧹 正在清理 cargo 构建缓存...",
	cleanSecondarySkipped: "ℹ️  未找到 cargo，跳过构建缓存清理",
}

var msg = loadCatalog()

func loadCatalog() catalog {
	lang := strings.ToLower(os.Getenv("HVCTL_LANG"))
	if strings.HasPrefix(lang, "zh") {
		return zhCatalog
	}
	return enCatalog
}
