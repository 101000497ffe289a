package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	outputDir  string
}

// setupCLITestEnv writes a config file whose directories all live under a
// temp dir so commands never touch the real home.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()
	base := t.TempDir()
	env := &cliTestEnv{
		baseDir:    base,
		configPath: filepath.Join(base, "config.toml"),
		outputDir:  filepath.Join(base, "output"),
	}
	writeTestConfig(t, env, "")
	return env
}

// writeTestConfig writes env.configPath; extra is appended verbatim for
// per-test sections such as a lyrics base_url override.
func writeTestConfig(t *testing.T, env *cliTestEnv, extra string) {
	t.Helper()
	content := fmt.Sprintf(
		"[paths]\noutput_dir = %q\nlog_dir = %q\ncache_dir = %q\n\n[logging]\nlevel = \"error\"\n",
		env.outputDir,
		filepath.Join(env.baseDir, "logs"),
		filepath.Join(env.baseDir, "cache"),
	)
	if extra != "" {
		content += "\n" + extra
	}
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write test config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{}
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeTranscript builds a transcript JSON fixture whose word stream is the
// lyrics text read verbatim at a steady half-second cadence.
func writeTranscript(t *testing.T, dir, artist, track, lyricsText string) string {
	t.Helper()

	type wireWord struct {
		Word       string  `json:"word"`
		Start      float64 `json:"start"`
		End        float64 `json:"end"`
		Confidence float64 `json:"confidence"`
	}
	var words []wireWord
	at := 0.0
	for _, field := range strings.Fields(lyricsText) {
		words = append(words, wireWord{Word: field, Start: at, End: at + 0.5, Confidence: 1.0})
		at += 0.5
	}

	payload := map[string]any{
		"metadata": map[string]string{
			"artist":          artist,
			"track":           track,
			"original_lyrics": lyricsText,
		},
		"words": words,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal transcript: %v", err)
	}

	path := filepath.Join(dir, "transcript.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write transcript: %v", err)
	}
	return path
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
