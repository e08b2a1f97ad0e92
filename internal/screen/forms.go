package screen

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/apriority/miniapp/internal/model"
	"github.com/samber/lo"
)

// Reaction is the like/dislike choice on a comment. Both can never be set.
type Reaction string

const (
	NoReaction Reaction = ""
	Like       Reaction = "like"
	Dislike    Reaction = "dislike"
)

// ParseReaction maps a form value to a Reaction.
func ParseReaction(s string) Reaction {
	switch Reaction(strings.ToLower(strings.TrimSpace(s))) {
	case Like:
		return Like
	case Dislike:
		return Dislike
	}
	return NoReaction
}

// Toggle returns the reaction after pressing r while current is selected.
// Pressing the selected reaction again clears it.
func (current Reaction) Toggle(r Reaction) Reaction {
	if current == r {
		return NoReaction
	}
	return r
}

// CommentForm is the add-comment form.
type CommentForm struct {
	Text     string
	Reaction Reaction
}

// ParseCommentForm reads the form fields "text" and "reaction".
func ParseCommentForm(v url.Values) CommentForm {
	return CommentForm{
		Text:     v.Get("text"),
		Reaction: ParseReaction(v.Get("reaction")),
	}
}

// Valid reports whether the comment can be submitted.
func (f CommentForm) Valid() bool {
	return strings.TrimSpace(f.Text) != "" && f.Reaction != NoReaction
}

// Comment builds the backend payload.
func (f CommentForm) Comment(address, author, wallet string) model.NewComment {
	return model.NewComment{
		Collection:  address,
		Name:        author,
		UserAddress: wallet,
		Like:        f.Reaction == Like,
		Text:        strings.TrimSpace(f.Text),
	}
}

// CalculatorForm holds the calculator inputs as typed by the user.
type CalculatorForm struct {
	Address string
	Income  string
	Days    string
}

// ParseCalculatorForm reads the form fields "address", "income" and "days".
func ParseCalculatorForm(v url.Values) CalculatorForm {
	return CalculatorForm{
		Address: strings.TrimSpace(v.Get("address")),
		Income:  strings.TrimSpace(v.Get("income")),
		Days:    strings.TrimSpace(v.Get("days")),
	}
}

// Request converts the form to a backend request. It fails unless the address
// is non-blank, income is positive and days is a positive integer.
func (f CalculatorForm) Request() (model.CalculatorRequest, error) {
	if f.Address == "" {
		return model.CalculatorRequest{}, fmt.Errorf("address is required")
	}
	income, err := strconv.ParseFloat(strings.ReplaceAll(f.Income, ",", "."), 64)
	if err != nil || income <= 0 {
		return model.CalculatorRequest{}, fmt.Errorf("income must be positive, got %q", f.Income)
	}
	days, err := strconv.Atoi(f.Days)
	if err != nil || days <= 0 {
		return model.CalculatorRequest{}, fmt.Errorf("days must be a positive integer, got %q", f.Days)
	}
	return model.CalculatorRequest{Address: f.Address, Income: income, PaymentIntervalDays: days}, nil
}

// Valid reports whether the calculator can compute.
func (f CalculatorForm) Valid() bool {
	_, err := f.Request()
	return err == nil
}

// MaxRewardTokens caps the repeated token entries of a listing request.
const MaxRewardTokens = 10

// TokenEntry is one reward token row of the listing request form.
type TokenEntry struct {
	Index   int
	Address string
	Amount  string
}

// ListingForm is the listing request form.
type ListingForm struct {
	Collection string
	Period     string
	Reward     string
	Tokens     []TokenEntry
}

// NewListingForm returns an empty form with one token row.
func NewListingForm() ListingForm {
	return ListingForm{Tokens: []TokenEntry{{}}}
}

// ParseListingForm reads the fixed fields and the numbered token rows
// token_address_N / token_amount_N. Rows are renumbered from zero.
func ParseListingForm(v url.Values) ListingForm {
	f := ListingForm{
		Collection: strings.TrimSpace(v.Get("collection")),
		Period:     strings.TrimSpace(v.Get("period")),
		Reward:     strings.TrimSpace(v.Get("reward")),
	}

	for i := 0; i < MaxRewardTokens; i++ {
		idx := strconv.Itoa(i)
		address, hasAddress := v["token_address_"+idx]
		amount, hasAmount := v["token_amount_"+idx]
		if !hasAddress && !hasAmount {
			continue
		}
		f.Tokens = append(f.Tokens, TokenEntry{
			Address: strings.TrimSpace(first(address)),
			Amount:  strings.TrimSpace(first(amount)),
		})
	}
	f.renumber()
	return f
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func (f *ListingForm) renumber() {
	for i := range f.Tokens {
		f.Tokens[i].Index = i
	}
}

// AddToken appends an empty token row unless the limit is reached.
func (f *ListingForm) AddToken() bool {
	if len(f.Tokens) >= MaxRewardTokens {
		return false
	}
	f.Tokens = append(f.Tokens, TokenEntry{})
	f.renumber()
	return true
}

// RemoveToken deletes the row at index. Out-of-range indexes are ignored.
func (f *ListingForm) RemoveToken(index int) bool {
	if index < 0 || index >= len(f.Tokens) {
		return false
	}
	f.Tokens = append(f.Tokens[:index], f.Tokens[index+1:]...)
	f.renumber()
	return true
}

// CanAddToken reports whether another token row fits.
func (f ListingForm) CanAddToken() bool {
	return len(f.Tokens) < MaxRewardTokens
}

// Valid reports whether every field, token rows included, is filled in.
// At least one token row is required.
func (f ListingForm) Valid() bool {
	if f.Collection == "" || f.Period == "" || f.Reward == "" || len(f.Tokens) == 0 {
		return false
	}
	return lo.EveryBy(f.Tokens, func(t TokenEntry) bool {
		return t.Address != "" && t.Amount != ""
	})
}

// Request converts the form to the backend listing request.
func (f ListingForm) Request() (model.ListingRequest, error) {
	if !f.Valid() {
		return model.ListingRequest{}, fmt.Errorf("listing request is incomplete")
	}
	calc, err := CalculatorForm{Address: f.Collection, Income: f.Reward, Days: f.Period}.Request()
	if err != nil {
		return model.ListingRequest{}, err
	}
	return model.ListingRequest{
		Address:             calc.Address,
		Income:              calc.Income,
		PaymentIntervalDays: calc.PaymentIntervalDays,
		Tokens: lo.Map(f.Tokens, func(t TokenEntry, _ int) model.RewardToken {
			return model.RewardToken{Address: t.Address, Amount: t.Amount}
		}),
	}, nil
}
