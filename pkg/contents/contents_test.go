package contents_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/foundry/pkg/contents"
	"github.com/m-mizutani/gt"
)

func TestLicense(t *testing.T) {
	text := contents.License()
	gt.True(t, strings.HasPrefix(text, "MIT License"))
	gt.True(t, strings.Contains(text, `THE SOFTWARE IS PROVIDED "AS IS"`))
	gt.Equal(t, text, contents.License())
}

func TestReadme(t *testing.T) {
	t.Run("interpolates name and full name", func(t *testing.T) {
		readme := contents.Readme("demo-repo", "octocat/demo-repo")

		gt.True(t, strings.HasPrefix(readme, "# demo-repo\n"))
		gt.True(t, strings.Contains(readme, "git clone https://github.com/octocat/demo-repo.git"))
		gt.True(t, strings.Contains(readme, "cd demo-repo"))
		gt.True(t, strings.Contains(readme, `"task": "demo-repo"`))
		gt.True(t, strings.Contains(readme, "[LICENSE](LICENSE)"))
	})

	t.Run("deterministic output", func(t *testing.T) {
		a := contents.Readme("demo-repo", "octocat/demo-repo")
		b := contents.Readme("demo-repo", "octocat/demo-repo")
		gt.Equal(t, a, b)
	})
}

func TestPlaceholderFiles(t *testing.T) {
	files := contents.PlaceholderFiles()
	gt.Equal(t, len(files), 3)

	byPath := map[string]string{}
	for _, f := range files {
		gt.True(t, f.Message != "")
		gt.True(t, f.Content != "")
		byPath[f.Path] = f.Content
	}

	gt.True(t, strings.Contains(byPath["requirements.txt"], "fastapi"))
	gt.True(t, strings.Contains(byPath["main.py"], "FastAPI()"))
	gt.True(t, strings.Contains(byPath[".gitignore"], "__pycache__"))
}
