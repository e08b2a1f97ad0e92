package template

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"

	"github.com/apriority/miniapp/internal/i18n"
	"github.com/apriority/miniapp/internal/model"
	"github.com/apriority/miniapp/internal/navigation"
	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

// formatAddress shortens a wallet or contract address to "abcd...wxyz".
func formatAddress(s string) string {
	if len(s) <= 10 {
		return s
	}
	return s[:4] + "..." + s[len(s)-4:]
}

// formatLink turns a social link into its short display form:
// Telegram links become @handles, other links lose their scheme.
func formatLink(link string) string {
	s := strings.TrimSpace(link)
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "www.")
	s = strings.TrimSuffix(s, "/")

	if handle, ok := strings.CutPrefix(s, "t.me/"); ok && handle != "" {
		return "@" + handle
	}
	return s
}

// formatNumber groups thousands with spaces: 1234567 -> "1 234 567".
func formatNumber(n int) string {
	str := strconv.Itoa(n)
	sign := ""
	if strings.HasPrefix(str, "-") {
		sign, str = "-", str[1:]
	}
	var result strings.Builder
	result.WriteString(sign)
	for i, c := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result.WriteRune(' ')
		}
		result.WriteRune(c)
	}
	return result.String()
}

type unitPart struct {
	n   int
	key string
}

// payback renders a payback period as "1 y. 2 m. 3 d.", skipping zero parts.
func payback(lang i18n.Language, p model.PaybackPeriod) string {
	parts := lo.Filter([]unitPart{
		{p.Years, "unit.years"},
		{p.Months, "unit.months"},
		{p.Days, "unit.days"},
	}, func(part unitPart, _ int) bool {
		return part.n > 0
	})

	if len(parts) == 0 {
		return "0 " + i18n.T(lang, "unit.days")
	}
	return strings.Join(lo.Map(parts, func(part unitPart, _ int) string {
		return strconv.Itoa(part.n) + " " + i18n.T(lang, part.key)
	}), " ")
}

// funcMap provides custom template functions.
var funcMap = template.FuncMap{
	"t": i18n.T,
	"add": func(a, b int) int {
		return a + b
	},
	"formatAddress": formatAddress,
	"formatLink":    formatLink,
	"formatNumber":  formatNumber,
	"formatAPR": func(f float64) string {
		return strconv.FormatFloat(f, 'f', 2, 64)
	},
	"formatAmount": func(d decimal.Decimal) string {
		return d.Round(4).String()
	},
	"payback": payback,
	"stateURL": func(screen, address string) string {
		return navigation.URL(navigation.Screen(screen), navigation.State{Address: address})
	},
	"lower": strings.ToLower,
	"markdown": func(s string) template.HTML {
		extensions := blackfriday.CommonExtensions | blackfriday.Autolink
		renderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
			Flags: blackfriday.CommonHTMLFlags,
		})
		unsafe := blackfriday.Run([]byte(s), blackfriday.WithRenderer(renderer), blackfriday.WithExtensions(extensions))
		// Collection descriptions come from third parties.
		p := bluemonday.UGCPolicy()
		safe := p.SanitizeBytes(unsafe)
		return template.HTML(safe)
	},
}

// pageNames are the screens rendered on top of base.html.
var pageNames = []string{
	"home.html",
	"collection.html",
	"comments.html",
	"addcomment.html",
	"calculator.html",
	"listing.html",
	"listingrequest.html",
	"language.html",
	"settings.html",
}

// Templates holds parsed HTML templates.
type Templates struct {
	pages map[string]*template.Template
}

// New parses and returns all templates.
func New() (*Templates, error) {
	pages := make(map[string]*template.Template)

	base, err := template.New("base.html").Funcs(funcMap).ParseFS(templateFS, "templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("parsing base template: %w", err)
	}

	for _, name := range pageNames {
		pageTemplate, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("cloning base for %s: %w", name, err)
		}

		_, err = pageTemplate.ParseFS(templateFS, "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}

		pages[name] = pageTemplate
	}

	return &Templates{pages: pages}, nil
}

// Render executes the named template with the given data.
func (t *Templates) Render(w io.Writer, name string, data any) error {
	tmpl, ok := t.pages[name]
	if !ok {
		return fmt.Errorf("template %s not found", name)
	}
	return tmpl.ExecuteTemplate(w, "base", data)
}
