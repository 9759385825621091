package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsqStephenZhang/emoji-cheat-sheet/internal/config"
	"github.com/hsqStephenZhang/emoji-cheat-sheet/internal/logging"
)

const testEmojiJSON = `{
	"grinning": "https://example.com/images/icons/emoji/unicode/1f600.png?v8",
	"thumbsup": "https://example.com/images/icons/emoji/unicode/1f44d.png?v8",
	"+1": "https://example.com/images/icons/emoji/unicode/1f44d.png?v8",
	"octocat": "https://example.com/images/icons/emoji/octocat.png?v8"
}`

const testChartHTML = `<html><body><table>
<tr><th class="bighead"><a>Smileys &amp; Emotion</a></th></tr>
<tr><th class="mediumhead"><a>face-smiling</a></th></tr>
<tr><td class="rchars">1</td><td class="chars">😀</td></tr>
<tr><th class="bighead"><a>People &amp; Body</a></th></tr>
<tr><th class="mediumhead"><a>hand-fingers-closed</a></th></tr>
<tr><td class="rchars">2</td><td class="chars">👍</td></tr>
</table></body></html>`

// setupTestAppCfg points the global AppCfg at local fixture servers.
func setupTestAppCfg(t *testing.T) (*config.AppConfig, func()) {
	t.Helper()

	emojiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(testEmojiJSON))
	}))
	chartServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(testChartHTML))
	}))

	tempDir, err := os.MkdirTemp("", "testcli_*")
	require.NoError(t, err)
	manifestPath := filepath.Join(tempDir, "go.mod")
	require.NoError(t, os.WriteFile(manifestPath, []byte("module example.com/acme/emoji-sheet\n"), 0644))

	logging.Setup(logging.Config{Level: "error", Console: true})

	cfg := &config.AppConfig{
		EmojiAPIURL:  emojiServer.URL,
		ChartURL:     chartServer.URL,
		UserAgent:    "test-agent",
		OutputPath:   filepath.Join(tempDir, "readme.md"),
		Columns:      2,
		TOCTitle:     "Table of Contents",
		ManifestPath: manifestPath,
	}
	AppCfg = cfg

	cleanup := func() {
		emojiServer.Close()
		chartServer.Close()
		os.RemoveAll(tempDir)
		AppCfg = nil
	}
	return cfg, cleanup
}

// executeCommand captures the output of a Cobra command.
func executeCommand(root *cobra.Command, args ...string) (string, error) {
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return strings.TrimSpace(buf.String()), err
}

func TestGenerateCmdWritesDocument(t *testing.T) {
	cfg, cleanup := setupTestAppCfg(t)
	defer cleanup()

	rootCmd := &cobra.Command{Use: "root"}
	rootCmd.AddCommand(NewGenerateCmd())

	_, err := executeCommand(rootCmd, "generate")
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)
	doc := string(data)

	// Title comes from the manifest module path.
	assert.True(t, strings.HasPrefix(doc, "# emoji-sheet\n"))
	assert.Contains(t, doc, "### Smileys & Emotion")
	assert.Contains(t, doc, "#### Face Smiling")
	assert.Contains(t, doc, "| :grinning: | `:grinning:` ")
	assert.Contains(t, doc, "#### Hand Fingers Closed")
	assert.Contains(t, doc, "`:thumbsup:` <br /> `:+1:` ")
	assert.Contains(t, doc, "### GitHub Custom Emoji")
	assert.Contains(t, doc, "| :octocat: | `:octocat:` ")
}

func TestGenerateCmdDryRunWritesNothing(t *testing.T) {
	cfg, cleanup := setupTestAppCfg(t)
	defer cleanup()
	cfg.DryRun = true

	rootCmd := &cobra.Command{Use: "root"}
	rootCmd.AddCommand(NewGenerateCmd())

	_, err := executeCommand(rootCmd, "generate")
	require.NoError(t, err)

	_, statErr := os.Stat(cfg.OutputPath)
	assert.True(t, os.IsNotExist(statErr), "dry run must not create the output file")
}

func TestGenerateCmdRejectsInvalidColumns(t *testing.T) {
	_, cleanup := setupTestAppCfg(t)
	defer cleanup()

	rootCmd := &cobra.Command{Use: "root"}
	rootCmd.AddCommand(NewGenerateCmd())

	_, err := executeCommand(rootCmd, "generate", "--columns", "0")
	assert.Error(t, err)
}

func TestLookupCmd(t *testing.T) {
	_, cleanup := setupTestAppCfg(t)
	defer cleanup()

	rootCmd := &cobra.Command{Use: "root"}
	rootCmd.AddCommand(NewLookupCmd())

	output, err := executeCommand(rootCmd, "lookup", ":+1:")
	require.NoError(t, err)
	assert.Contains(t, output, "shortcode: :+1:")
	assert.Contains(t, output, "category:  People & Body")
	assert.Contains(t, output, "subcategory: Hand Fingers Closed")
	assert.Contains(t, output, ":thumbsup:")
}

func TestLookupCmdUnknownShortcode(t *testing.T) {
	_, cleanup := setupTestAppCfg(t)
	defer cleanup()

	rootCmd := &cobra.Command{Use: "root"}
	rootCmd.AddCommand(NewLookupCmd())

	_, err := executeCommand(rootCmd, "lookup", "definitely-not-an-emoji")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
