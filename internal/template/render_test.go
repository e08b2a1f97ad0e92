package template_test

import (
	"bytes"
	"testing"

	"github.com/apriority/miniapp/internal/handler"
	"github.com/apriority/miniapp/internal/i18n"
	"github.com/apriority/miniapp/internal/model"
	"github.com/apriority/miniapp/internal/navigation"
	"github.com/apriority/miniapp/internal/payments"
	"github.com/apriority/miniapp/internal/screen"
	"github.com/apriority/miniapp/internal/template"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func page(lang i18n.Language, scr navigation.Screen, st navigation.State, title string) handler.Page {
	return handler.Page{
		Title:  title,
		Lang:   lang,
		Theme:  i18n.Light,
		Bridge: navigation.For(scr, st),
		Tab:    scr,
		Tabs:   navigation.Tabs,
	}
}

func render(t *testing.T, name string, data any) string {
	t.Helper()
	tmpl, err := template.New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.Render(&buf, name, data))
	return buf.String()
}

func TestRender_Home(t *testing.T) {
	data := handler.HomeData{
		Page: page(i18n.Russian, navigation.Home, navigation.State{}, "home.title"),
		Collections: screen.State[[]model.CollectionData]{
			Status: screen.Loaded,
			Data: []model.CollectionData{
				{Collection: model.Collection{Address: "EQ1", Name: "Whales", IsVerified: true}, APR: 12.5},
			},
		},
	}
	data.Modal = "wallet"
	data.ModalClose = "/?modal=closed"

	out := render(t, "home.html", data)

	assert.Contains(t, out, "Коллекции")
	assert.Contains(t, out, "Whales")
	assert.Contains(t, out, "APR 12.50%")
	assert.Contains(t, out, `data-screen="home"`)
	assert.Contains(t, out, `data-show-settings="true"`)
	assert.Contains(t, out, "/?modal=closed")
	assert.Contains(t, out, i18n.T(i18n.Russian, "nav.calculator"))
}

func TestRender_HomeFailed(t *testing.T) {
	data := handler.HomeData{
		Page:        page(i18n.English, navigation.Home, navigation.State{}, "home.title"),
		Collections: screen.State[[]model.CollectionData]{Status: screen.Failed},
	}

	out := render(t, "home.html", data)
	assert.Contains(t, out, i18n.T(i18n.English, "error.generic"))
}

func TestRender_Collection(t *testing.T) {
	st := navigation.State{Address: "EQ1"}
	buckets := []payments.Bucket{
		{Label: "01.2024", Total: decimal.RequireFromString("0.75"), Count: 2},
		{Label: payments.UndatedLabel, Total: decimal.NewFromInt(1), Count: 1},
	}
	data := handler.CollectionData{
		Page:    page(i18n.English, navigation.Collection, st, "Whales"),
		Address: "EQ1",
		Status:  screen.Loaded,
		Data: &model.CollectionData{
			Collection: model.Collection{
				Address:                 "EQ1",
				Name:                    "Whales",
				Description:             "Best **whales** <script>x()</script>",
				SocialLinks:             []string{"https://t.me/whales"},
				ApproximateItemsCount:   10000,
				ApproximateHoldersCount: 1234,
				Floor:                   12.5,
			},
			APR:             21.4,
			PaybackPeriod:   model.PaybackPeriod{Years: 1, Months: 2},
			RegularPayments: true,
		},
		Period:  payments.Monthly,
		Periods: payments.Periods,
		Buckets: buckets,
	}
	data.Tab = ""

	out := render(t, "collection.html", data)

	assert.Contains(t, out, "<strong>whales</strong>")
	assert.NotContains(t, out, "<script>x()")
	assert.Contains(t, out, "@whales")
	assert.Contains(t, out, "10 000")
	assert.Contains(t, out, "1 y. 2 m.")
	assert.Contains(t, out, "0.75 TON")
	assert.Contains(t, out, payments.UndatedLabel)
	assert.Contains(t, out, "period--active")
	assert.NotContains(t, out, `class="footer"`)
}

func TestRender_CollectionNotFound(t *testing.T) {
	data := handler.CollectionData{
		Page:     page(i18n.English, navigation.Collection, navigation.State{Address: "EQ1"}, "collection.profitability"),
		Address:  "EQ1",
		Status:   screen.Failed,
		NotFound: true,
	}

	out := render(t, "collection.html", data)
	assert.Contains(t, out, i18n.T(i18n.English, "collection.not_found"))
}

func TestRender_Forms(t *testing.T) {
	t.Run("calculator result", func(t *testing.T) {
		data := handler.CalculatorData{
			Page:  page(i18n.English, navigation.Calculator, navigation.State{}, "calculator.title"),
			Form:  screen.CalculatorForm{Address: "EQ1", Income: "0.5", Days: "7"},
			Token: "tok-1",
			Result: &model.CalculatorResult{
				Collection: model.Collection{Name: "Whales", Floor: 10},
				APR:        260.71,
			},
		}

		out := render(t, "calculator.html", data)
		assert.Contains(t, out, `value="tok-1"`)
		assert.Contains(t, out, "260.71%")
		assert.Contains(t, out, i18n.T(i18n.English, "calculator.result"))
	})

	t.Run("listing request rows", func(t *testing.T) {
		form := screen.NewListingForm()
		form.AddToken()
		data := handler.ListingRequestData{
			Page:  page(i18n.English, navigation.ListingRequest, navigation.State{}, "listingrequest.title"),
			Form:  form,
			Token: "tok-2",
		}

		out := render(t, "listingrequest.html", data)
		assert.Contains(t, out, `name="token_address_0"`)
		assert.Contains(t, out, `name="token_address_1"`)
	})

	t.Run("add comment with error", func(t *testing.T) {
		data := handler.AddCommentData{
			Page:    page(i18n.English, navigation.AddComment, navigation.State{Address: "EQ1"}, "addcomment.title"),
			Address: "EQ1",
			Form:    screen.CommentForm{Text: "meh", Reaction: screen.Dislike},
			Token:   "tok-3",
		}
		data.Error = "addcomment.duplicate"

		out := render(t, "addcomment.html", data)
		assert.Contains(t, out, i18n.T(i18n.English, "addcomment.duplicate"))
		assert.Contains(t, out, "meh")
	})
}

func TestRender_Settings(t *testing.T) {
	data := handler.SettingsData{
		Page:       page(i18n.English, navigation.Settings, navigation.State{}, "settings.title"),
		SupportURL: "https://t.me/apriority_support",
	}
	data.Wallet = "UQAbcdefghijklmnop"
	data.Theme = i18n.Dark

	out := render(t, "settings.html", data)
	assert.Contains(t, out, "UQAb...mnop")
	assert.Contains(t, out, "data-disconnect-form")
	assert.Contains(t, out, `value="light"`)
	assert.Contains(t, out, "dark-theme")
	assert.Contains(t, out, `data-history-back="true"`)
}

func TestRender_RussianOnEveryPage(t *testing.T) {
	ru := func(scr navigation.Screen, title string) handler.Page {
		return page(i18n.Russian, scr, navigation.State{Address: "EQ1"}, title)
	}
	loaded := &model.CollectionData{Collection: model.Collection{Address: "EQ1", Name: "Whales", Floor: 1}}

	tests := []struct {
		name  string
		data  any
		label string
	}{
		{"home.html", handler.HomeData{Page: ru(navigation.Home, "home.title")}, "home.title"},
		{"collection.html", handler.CollectionData{Page: ru(navigation.Collection, "Whales"), Address: "EQ1", Status: screen.Loaded, Data: loaded, Period: payments.Weekly, Periods: payments.Periods}, "collection.floor"},
		{"comments.html", handler.CommentsData{Page: ru(navigation.Comments, "comments.title"), Address: "EQ1", Status: screen.Loaded}, "comments.add"},
		{"addcomment.html", handler.AddCommentData{Page: ru(navigation.AddComment, "addcomment.title"), Address: "EQ1"}, "addcomment.send"},
		{"calculator.html", handler.CalculatorData{Page: ru(navigation.Calculator, "calculator.title")}, "calculator.address.header"},
		{"listing.html", handler.ListingData{Page: ru(navigation.Listing, "listing.title")}, "listing.request"},
		{"listingrequest.html", handler.ListingRequestData{Page: ru(navigation.ListingRequest, "listingrequest.title"), Form: screen.NewListingForm()}, "listingrequest.token.header"},
		{"language.html", handler.LanguageData{Page: ru(navigation.Language, "language.title"), Languages: i18n.Languages}, "language.title"},
		{"settings.html", handler.SettingsData{Page: ru(navigation.Settings, "settings.title")}, "settings.title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := render(t, tt.name, tt.data)

			assert.Contains(t, out, `<html lang="ru">`)
			assert.Contains(t, out, i18n.T(i18n.Russian, tt.label))
			assert.NotContains(t, out, i18n.T(i18n.English, tt.label))
		})
	}
}
