package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/apriority/miniapp/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL)
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	t.Run("valid url", func(t *testing.T) {
		c, err := New("http://127.0.0.1:5000/", WithTimeout(time.Second))
		require.NoError(t, err)
		assert.Equal(t, "http://127.0.0.1:5000", c.baseURL)
		assert.Equal(t, time.Second, c.http.Timeout)
	})

	t.Run("invalid url", func(t *testing.T) {
		for _, in := range []string{"", "localhost", "://bad"} {
			c, err := New(in)
			assert.Nil(t, c, in)
			assert.Error(t, err, in)
		}
	})
}

func TestListCollections(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/collections", r.URL.Path)
		_, _ = io.WriteString(w, `[{"collection":{"address":"EQA","name":"One"},"apr":12.5},{"collection":{"address":"EQB","name":"Two"},"apr":3}]`)
	})

	got, err := c.ListCollections(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "EQA", got[0].Collection.Address)
	assert.Equal(t, 12.5, got[0].APR)
}

func TestGetCollection(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/collection/EQabc", r.URL.Path)
			_, _ = io.WriteString(w, `{"collection":{"address":"EQabc","name":"Abc"},"apr":7,"unsafe":true}`)
		})

		got, err := c.GetCollection(context.Background(), "EQabc")
		require.NoError(t, err)
		assert.Equal(t, "Abc", got.Collection.Name)
		assert.True(t, got.Unsafe)
	})

	t.Run("not found", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"detail":"Collection not found!"}`, http.StatusNotFound)
		})

		got, err := c.GetCollection(context.Background(), "EQabc")
		assert.Nil(t, got)
		assert.True(t, IsNotFound(err))

		var se *StatusError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, http.StatusNotFound, se.StatusCode)
		assert.Contains(t, se.Body, "Collection not found")
	})
}

func TestGetPaymentHistory(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected int
	}{
		{"envelope", `{"history":[{"date":"01.01.2024","amount":0.5},{"date":"08.01.2024","amount":"0.25"}]}`, 2},
		{"empty list", `[]`, 0},
		{"bare list", `[{"date":"01.01.2024","amount":1}]`, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v1/collection/EQ1/payment_history", r.URL.Path)
				_, _ = io.WriteString(w, tt.body)
			})

			got, err := c.GetPaymentHistory(context.Background(), "EQ1")
			require.NoError(t, err)
			assert.Len(t, got, tt.expected)
		})
	}
}

func TestListComments(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/collection/EQ1/comments", r.URL.Path)
		_, _ = io.WriteString(w, `[{"collection":"EQ1","name":"Jared","time":"12:00 01.01.2024","like":true,"text":"great"}]`)
	})

	got, err := c.ListComments(context.Background(), "EQ1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Jared", got[0].Name)
	assert.True(t, got[0].Like)
}

func TestCheckOwnership(t *testing.T) {
	for _, owns := range []bool{true, false} {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/collection/EQ1/ownership/UQwallet", r.URL.Path)
			_ = json.NewEncoder(w).Encode(owns)
		})

		got, err := c.CheckOwnership(context.Background(), "EQ1", "UQwallet")
		require.NoError(t, err)
		assert.Equal(t, owns, got)
	}
}

func TestAddComment(t *testing.T) {
	t.Run("sends body with put", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/api/v1/collection/EQ1/comments", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body model.NewComment
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Ivan Petrov", body.Name)
			assert.Equal(t, "UQwallet", body.UserAddress)
			assert.False(t, body.Like)
			assert.Equal(t, "meh", body.Text)
			_, _ = io.WriteString(w, `200`)
		})

		err := c.AddComment(context.Background(), "EQ1", model.NewComment{
			Collection: "EQ1", Name: "Ivan Petrov", UserAddress: "UQwallet", Like: false, Text: "meh",
		})
		assert.NoError(t, err)
	})

	t.Run("unauthorized maps to not owner", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		err := c.AddComment(context.Background(), "EQ1", model.NewComment{})
		assert.ErrorIs(t, err, ErrNotOwner)
		assert.False(t, IsNotFound(err))
	})
}

func TestCalculate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v1/calculator", r.URL.Path)

			var body model.CalculatorRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, model.CalculatorRequest{Address: "EQ1", Income: 0.5, PaymentIntervalDays: 7}, body)

			_, _ = io.WriteString(w, `{"collection":{"name":"One","floor":10},"apr":260.71,"payback_period":{"days":20,"months":4,"years":0}}`)
		})

		got, err := c.Calculate(context.Background(), model.CalculatorRequest{Address: "EQ1", Income: 0.5, PaymentIntervalDays: 7})
		require.NoError(t, err)
		assert.Equal(t, 260.71, got.APR)
		assert.Equal(t, 4, got.PaybackPeriod.Months)
	})

	t.Run("not found", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := c.Calculate(context.Background(), model.CalculatorRequest{Address: "EQ1", Income: 1, PaymentIntervalDays: 1})
		assert.True(t, IsNotFound(err))
	})

	t.Run("server error is not a not found", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := c.Calculate(context.Background(), model.CalculatorRequest{Address: "EQ1", Income: 1, PaymentIntervalDays: 1})
		assert.Error(t, err)
		assert.False(t, IsNotFound(err))
	})
}

func TestSubmitListing(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/listing", r.URL.Path)

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "EQ1", body["address"])
		assert.Equal(t, 0.0, body["id"])
		assert.Equal(t, 42.0, body["user_id"])
		assert.Equal(t, 30.0, body["payment_interval_days"])
		assert.Len(t, body["jettons"], 1)
		_, _ = io.WriteString(w, `{"collection":{"name":"One"},"apr":12,"payback_period":{"days":1,"months":0,"years":1}}`)
	})

	got, err := c.SubmitListing(context.Background(), model.ListingRequest{
		UserID: 42, Address: "EQ1", Income: 0.1, PaymentIntervalDays: 30,
		Tokens: []model.RewardToken{{Address: "EQjetton", Amount: "0.1"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 12.0, got.APR)
}

func TestContextCancellation(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-release
	})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListCollections(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMalformedResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{not json`)
	})

	_, err := c.ListCollections(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}
