package wcag_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"wcagrep/pkg/domain"
	"wcagrep/pkg/wcag"
)

const cleanPage = `<!doctype html>
<html lang="en">
<head>
  <title>Acme</title>
  <meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
  <main>
    <h1>Acme</h1>
    <h2>About</h2>
    <img src="a.png" alt="Logo">
    <label for="email">Email</label><input id="email" type="email">
    <a href="/more">More</a>
    <button>Go</button>
  </main>
</body>
</html>`

const brokenPage = `<html>
<head><meta name="viewport" content="width=device-width, user-scalable=no"></head>
<body>
  <img src="logo.png">
  <input type="text" name="q">
  <input type="hidden" name="csrf">
  <p style="color:#777;background-color:#888">low</p>
  <a href="/home"></a>
  <button></button>
  <h1>Title</h1>
  <h3></h3>
  <div id="x"></div><div id="x"></div>
  <iframe src="https://maps.example.com/embed"></iframe>
  <video autoplay src="v.mp4"></video>
</body>
</html>`

// kinds projects violations to "type/severity/criterion" for diffing.
func kinds(vs []domain.Violation) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Type+"/"+string(v.Severity)+"/"+v.WCAGCriterion)
	}

	return out
}

func TestAnalyze_CleanPage(t *testing.T) {
	res, err := wcag.Analyze(cleanPage, "https://acme.example")
	require.NoError(t, err)

	require.Empty(t, res.Violations)
	require.Equal(t, 100, res.Score)
	require.Equal(t, "Acme", res.Title)
	require.Equal(t, 13, res.ElementsScanned)
	require.Equal(t, domain.LegalRiskLow, res.LegalRisk())
}

func TestAnalyze_BrokenPage(t *testing.T) {
	res, err := wcag.Analyze(brokenPage, "https://broken.example")
	require.NoError(t, err)

	want := []string{
		"image-alt/serious/1.1.1",
		"form-label/serious/3.3.2",
		"color-contrast/critical/1.4.3",
		"html-lang/serious/3.1.1",
		"document-title/serious/2.4.2",
		"link-name/serious/2.4.4",
		"button-name/critical/4.1.2",
		"empty-heading/moderate/1.3.1",
		"heading-order/moderate/1.3.1",
		"duplicate-id/minor/4.1.1",
		"meta-viewport/critical/1.4.4",
		"frame-title/serious/4.1.2",
		"landmark-main/moderate/1.3.1",
		"autoplay-media/minor/1.4.2",
	}
	if diff := cmp.Diff(want, kinds(res.Violations)); diff != "" {
		t.Fatalf("violations mismatch (-want +got):\n%s", diff)
	}

	wantCounts := domain.SeverityCounts{Critical: 3, Serious: 6, Moderate: 3, Minor: 2}
	if diff := cmp.Diff(wantCounts, res.Counts); diff != "" {
		t.Fatalf("counts mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, 32, res.Score)
	require.Empty(t, res.Title)

	require.Equal(t, `<img src="logo.png"/>`, res.Violations[0].Element)
	require.Equal(t, "<html>", res.Violations[3].Element)
	require.Contains(t, res.Violations[2].Recommendation, "at least 4.5:1")
	require.Equal(t, "Heading levels should only increase by one: h3 follows h1", res.Violations[8].Recommendation)
}

func TestAnalyze_Rules(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "labelled controls",
			body: `<main><label>Name <input name="n"></label>
				<input aria-label="Search"><input title="Zip"><select aria-labelledby="l"></select>
				<input type="submit"><input type="button"><input type="image" alt="Go"></main>`,
			want: []string{},
		},
		{
			name: "unlabelled select and textarea",
			body: `<main><select></select><textarea></textarea></main>`,
			want: []string{"form-label", "form-label"},
		},
		{
			name: "image input without alt",
			body: `<main><input type="image" src="go.png"></main>`,
			want: []string{"image-alt"},
		},
		{
			name: "link named by image alt",
			body: `<main><a href="/"><img src="home.png" alt="Home"></a><a name="anchor"></a></main>`,
			want: []string{},
		},
		{
			name: "large text passes at 3:1",
			body: `<main><p style="color:#777; background:#fff; font-size:24px">big</p>
				<p style="color:#777;background:#fff;font-weight:bold;font-size:19px">bold</p></main>`,
			want: []string{},
		},
		{
			name: "bold text below the large threshold",
			body: `<main><p style="color:#777;background:#fff;font-weight:700;font-size:18px">x</p></main>`,
			want: []string{"color-contrast"},
		},
		{
			name: "role main landmark",
			body: `<div role="main"><h2>Intro</h2><h3>Details</h3><h2>Next</h2></div>`,
			want: []string{},
		},
		{
			name: "muted autoplay and maximum scale",
			body: `<main><video autoplay muted></video><audio autoplay></audio></main>`,
			want: []string{"autoplay-media"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := `<html lang="en"><head><title>T</title></head><body>` + tt.body + `</body></html>`
			res, err := wcag.Analyze(src, "")
			require.NoError(t, err)

			got := make([]string, 0, len(res.Violations))
			for _, v := range res.Violations {
				got = append(got, v.Type)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("violations mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAnalyze_MetaViewportMaximumScale(t *testing.T) {
	src := `<html lang="en"><head><title>T</title>
		<meta name="viewport" content="width=device-width, maximum-scale=1.0"></head><body><main></main></body></html>`
	res, err := wcag.Analyze(src, "")
	require.NoError(t, err)
	require.Len(t, res.Violations, 1)
	require.Equal(t, wcag.RuleMetaViewport, res.Violations[0].Type)

	src = strings.Replace(src, "maximum-scale=1.0", "maximum-scale=5", 1)
	res, err = wcag.Analyze(src, "")
	require.NoError(t, err)
	require.Empty(t, res.Violations)
}

func TestAnalyze_TruncatesElements(t *testing.T) {
	src := `<html lang="en"><head><title>T</title></head><body><main><button>` +
		`<span aria-hidden="true">` + strings.Repeat(" ", 10) + `</span>` +
		`<svg>` + strings.Repeat("<g></g>", 100) + `</svg></button></main></body></html>`
	res, err := wcag.Analyze(src, "")
	require.NoError(t, err)
	require.Len(t, res.Violations, 1)
	require.True(t, strings.HasSuffix(res.Violations[0].Element, "…"))
	require.LessOrEqual(t, len([]rune(res.Violations[0].Element)), 251)
}
