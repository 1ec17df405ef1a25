// Package contents generates the files committed into a freshly provisioned
// repository. Everything here is pure and deterministic so it can be tested
// without any network stubbing.
package contents

import (
	"strings"
	"text/template"

	"github.com/m-mizutani/foundry/pkg/domain/model"
)

// Description is the fixed description attached to every provisioned repository
const Description = "A FastAPI-based application for solving captcha tasks."

const licenseText = `MIT License

Copyright (c) 2023

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
`

// License returns the fixed MIT license text
func License() string {
	return licenseText
}

var readmeTmpl = template.Must(template.New("readme").Parse(`# {{.Name}}

## Summary
This project is a FastAPI-based application for solving captcha tasks.

## Setup
1. Clone the repository:
` + "```bash" + `
git clone https://github.com/{{.FullName}}.git
` + "```" + `
2. Navigate to the project directory:
` + "```bash" + `
cd {{.Name}}
` + "```" + `
3. Install dependencies:
` + "```bash" + `
pip install -r requirements.txt
` + "```" + `
4. Run the application:
` + "```bash" + `
uvicorn main:app --reload
` + "```" + `

## Usage
- Access the root endpoint:
` + "```bash" + `
curl -X GET http://127.0.0.1:8000/
` + "```" + `
- Send a POST request to ` + "`/api-endpoint`" + `:
` + "```bash" + `
curl -X POST http://127.0.0.1:8000/api-endpoint \
    -H "Content-Type: application/json" \
    -d '{"email": "student@example.com", "secret": "abcd", "task": "{{.Name}}", "round": 1, "nonce": "ab12-...", "brief": "Create a captcha solver."}'
` + "```" + `

## License
This project is licensed under the MIT License. See the [LICENSE](LICENSE) file for details.
`))

// Readme renders the README for a repository. Output is byte-identical for
// identical inputs.
func Readme(name, fullName string) string {
	var sb strings.Builder
	// The template only dereferences plain strings, so Execute cannot fail
	_ = readmeTmpl.Execute(&sb, struct {
		Name     string
		FullName string
	}{Name: name, FullName: fullName})
	return sb.String()
}

const requirementsText = `fastapi
uvicorn[standard]
httpx
`

const mainPyText = `from fastapi import FastAPI

app = FastAPI()


@app.get("/")
def read_root():
    return {"message": "Hello, World!"}
`

const gitignoreText = `__pycache__/
*.pyc
.env
.venv/
`

// PlaceholderFiles returns the fixed skeleton committed alongside the license
// and README. Order carries no meaning; each write is independent.
func PlaceholderFiles() []*model.FileWrite {
	return []*model.FileWrite{
		{Path: "requirements.txt", Message: "Add requirements.txt", Content: requirementsText},
		{Path: "main.py", Message: "Add main.py", Content: mainPyText},
		{Path: ".gitignore", Message: "Add .gitignore", Content: gitignoreText},
	}
}
