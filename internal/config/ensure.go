// internal/config/ensure.go

package config

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrNoDefaultTemplate is returned by the explicit creation path when the
// checked-in template is missing. The silent path never fails on this.
var ErrNoDefaultTemplate = errors.New("default configuration template not found")

// Outcome describes what Ensure / WriteDefault actually did.
type Outcome int

const (
	// OutcomeExisting: a config file was already present, left untouched.
	OutcomeExisting Outcome = iota
	// OutcomeCreated: the default template was copied into place.
	OutcomeCreated
	// OutcomeNoTemplate: no config and no template; the caller should warn
	// and proceed, the downstream executor may still accept explicit flags.
	OutcomeNoTemplate
	// OutcomeSkipped: the user declined an interactive overwrite.
	OutcomeSkipped
	// OutcomeOverwritten: an existing config was replaced (after backup).
	OutcomeOverwritten
)

// Ensure is the silent path used before build/run. It never overwrites an
// existing file and never fails on a missing template.
func Ensure(configPath, templatePath string) (Outcome, error) {
	if st, err := os.Stat(configPath); err == nil && !st.IsDir() {
		return OutcomeExisting, nil
	}
	if _, err := os.Stat(templatePath); err != nil {
		return OutcomeNoTemplate, nil
	}
	if err := copyFile(templatePath, configPath); err != nil {
		return OutcomeNoTemplate, fmt.Errorf("copy default config: %w", err)
	}
	log.Debug().Str("from", templatePath).Str("to", configPath).Msg("default config copied")
	return OutcomeCreated, nil
}

// WriteDefault is the explicit path behind the defconfig verb. With
// interactive set, an existing config triggers a single yes/no prompt on
// in/out; anything but an affirmative answer leaves the file byte-untouched
// and reports OutcomeSkipped. An overwrite backs the previous file up
// first.
func WriteDefault(configPath, templatePath string, interactive bool, in io.Reader, out io.Writer) (Outcome, error) {
	if _, err := os.Stat(templatePath); err != nil {
		return OutcomeNoTemplate, fmt.Errorf("%w: %s", ErrNoDefaultTemplate, templatePath)
	}

	exists := false
	if st, err := os.Stat(configPath); err == nil && !st.IsDir() {
		exists = true
	}

	// A config that already matches the template byte for byte needs no
	// prompt, no backup and no write.
	if exists && sameContent(configPath, templatePath) {
		return OutcomeExisting, nil
	}

	if exists && interactive {
		fmt.Fprintf(out, "%s already exists. Overwrite? [y/N] ", configPath)
		if !readAffirmative(in) {
			return OutcomeSkipped, nil
		}
	}

	if exists {
		backup := configPath + ".backup_" + time.Now().UTC().Format("20060102_150405")
		if err := copyFile(configPath, backup); err != nil {
			return OutcomeSkipped, fmt.Errorf("backup existing config: %w", err)
		}
		fmt.Fprintf(out, "Backed up existing configuration to %s\n", backup)
	}

	if err := copyFile(templatePath, configPath); err != nil {
		return OutcomeSkipped, fmt.Errorf("copy default config: %w", err)
	}
	if exists {
		return OutcomeOverwritten, nil
	}
	return OutcomeCreated, nil
}

// readAffirmative reads one line and treats only y/yes (any case) as
// consent. Read errors and empty input default to no; there is exactly one
// prompt, never a retry loop.
func readAffirmative(in io.Reader) bool {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func sameContent(a, b string) bool {
	da, err := os.ReadFile(a)
	if err != nil {
		return false
	}
	db, err := os.ReadFile(b)
	if err != nil {
		return false
	}
	return bytes.Equal(da, db)
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}
