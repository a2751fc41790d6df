// internal/cli/messages_test.go

package cli

import "testing"

func TestCatalogSelection(t *testing.T) {
	cases := []struct {
		lang string
		want catalog
	}{
		{"", enCatalog},
		{"en_US.UTF-8", enCatalog},
		{"zh", zhCatalog},
		{"zh_CN.UTF-8", zhCatalog},
		{"ZH", zhCatalog},
	}
	for _, tc := range cases {
		t.Setenv("HVCTL_LANG", tc.lang)
		got := loadCatalog()
		if got.noWorkspace != tc.want.noWorkspace {
			t.Errorf("HVCTL_LANG=%q picked the wrong catalog (got %q)", tc.lang, got.noWorkspace)
		}
	}
}

func TestCatalogsAreComplete(t *testing.T) {
	for name, c := range map[string]catalog{"en": enCatalog, "zh": zhCatalog} {
		if c.noWorkspace == "" || c.envFresh == "" || c.envBootstrap == "" || c.envReady == "" ||
			c.configCreated == "" || c.configExists == "" || c.configSkipped == "" ||
			c.configOverwrote == "" || c.warnNoTemplate == "" || c.warnConfigAbsent == "" ||
			c.cleanSecondary == "" || c.cleanSecondarySkipped == "" {
			t.Errorf("%s catalog has an empty message", name)
		}
	}
}
