package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL(t *testing.T) {
	t.Run("Successful fetch", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>Job posting</body></html>"))
		}))
		defer server.Close()

		result, err := URL(context.Background(), server.URL, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, result.StatusCode)
		assert.Contains(t, result.HTML, "Job posting")
	})

	t.Run("Non-200 status returns error with result", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		result, err := URL(context.Background(), server.URL, nil)
		assert.Error(t, err)
		require.NotNil(t, result)
		assert.Equal(t, http.StatusNotFound, result.StatusCode)
	})

	t.Run("Invalid URL", func(t *testing.T) {
		_, err := URL(context.Background(), "not-a-url", nil)
		assert.Error(t, err)

		var fetchErr *Error
		assert.ErrorAs(t, err, &fetchErr)
	})
}

func TestExtractMainText(t *testing.T) {
	tests := []struct {
		name        string
		html        string
		contains    string
		notContains string
	}{
		{
			name:        "Uses job description selector",
			html:        `<html><body><nav>Menu</nav><div class="job-description">Build Go services</div></body></html>`,
			contains:    "Build Go services",
			notContains: "Menu",
		},
		{
			name:     "Falls back to body",
			html:     `<html><body><p>Plain posting text</p></body></html>`,
			contains: "Plain posting text",
		},
		{
			name:        "Removes script and style noise",
			html:        `<html><body><script>var x;</script><main>Real content</main></body></html>`,
			contains:    "Real content",
			notContains: "var x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := ExtractMainText(tt.html, JobPostingSelectors())
			require.NoError(t, err)
			assert.Contains(t, text, tt.contains)
			if tt.notContains != "" {
				assert.NotContains(t, text, tt.notContains)
			}
		})
	}
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("too short"))
	assert.False(t, ShouldUseBrowser(strings.Repeat("long content ", 100)))
}
