package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/apriority/miniapp/internal/backend"
	"github.com/apriority/miniapp/internal/model"
	"github.com/apriority/miniapp/internal/navigation"
	"github.com/apriority/miniapp/internal/screen"
)

// CommentsData holds data for the comments template.
type CommentsData struct {
	Page
	Address  string
	Status   screen.Status
	Comments []model.Comment
}

// AddCommentData holds data for the add-comment template.
type AddCommentData struct {
	Page
	Address string
	Form    screen.CommentForm
	Token   string
}

// Comments lists the comments on a collection in the order the backend
// returns them.
func (h *Handler) Comments(w http.ResponseWriter, r *http.Request) {
	s := h.loadSession(r)
	st := state(r)
	if st.Address == "" {
		http.Redirect(w, r, navigation.Home.Path(), http.StatusSeeOther)
		return
	}

	comments := screen.Load(r.Context(), func(ctx context.Context) ([]model.Comment, error) {
		list, err := h.backend.ListComments(ctx, st.Address)
		if backend.IsNotFound(err) {
			return nil, nil
		}
		return list, err
	})
	if comments.Status == screen.Idle {
		return
	}
	if comments.Status == screen.Failed {
		slog.Error("failed to fetch comments", "address", st.Address, "error", comments.Err)
	}

	h.render(w, http.StatusOK, "comments.html", CommentsData{
		Page:     h.page(s, navigation.Comments, st, "comments.title"),
		Address:  st.Address,
		Status:   comments.Status,
		Comments: comments.Data,
	})
}

// AddCommentForm shows an empty comment form.
func (h *Handler) AddCommentForm(w http.ResponseWriter, r *http.Request) {
	s := h.loadSession(r)
	st := state(r)
	if st.Address == "" {
		http.Redirect(w, r, navigation.Home.Path(), http.StatusSeeOther)
		return
	}

	h.renderAddComment(w, http.StatusOK, s, st, screen.CommentForm{}, "", "")
}

// AddComment validates and publishes a comment. It needs a connected wallet
// that holds an NFT of the collection.
func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	s := h.loadSession(r)
	st := state(r)
	if st.Address == "" {
		http.Redirect(w, r, navigation.Home.Path(), http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	form := screen.ParseCommentForm(r.PostForm)

	if !form.Valid() {
		h.renderAddComment(w, http.StatusUnprocessableEntity, s, st, form, "", "addcomment.invalid")
		return
	}
	if s.wallet == "" {
		h.renderAddComment(w, http.StatusOK, s, st, form, "wallet", "")
		return
	}

	release, err := h.guard.Begin(r.PostForm.Get("token"))
	if err != nil {
		msg := "form.expired"
		if errors.Is(err, screen.ErrDuplicateSubmit) {
			msg = "addcomment.duplicate"
		}
		h.renderAddComment(w, http.StatusConflict, s, st, form, "", msg)
		return
	}

	ctx := r.Context()
	owns, err := h.backend.CheckOwnership(ctx, st.Address, s.wallet)
	if err != nil || !owns {
		release(false)
		if err != nil {
			slog.Error("failed to check ownership", "address", st.Address, "wallet", s.wallet, "error", err)
		}
		h.renderAddComment(w, http.StatusOK, s, st, form, "owner", "")
		return
	}

	if err := h.backend.AddComment(ctx, st.Address, form.Comment(st.Address, s.author(), s.wallet)); err != nil {
		release(false)
		if errors.Is(err, backend.ErrNotOwner) {
			h.renderAddComment(w, http.StatusOK, s, st, form, "owner", "")
			return
		}
		slog.Error("failed to add comment", "address", st.Address, "error", err)
		h.renderAddComment(w, http.StatusBadGateway, s, st, form, "", "addcomment.failed")
		return
	}
	release(true)

	slog.Info("comment added", "address", st.Address, "like", form.Reaction == screen.Like)
	http.Redirect(w, r, navigation.URL(navigation.Comments, st), http.StatusSeeOther)
}

func (h *Handler) renderAddComment(w http.ResponseWriter, status int, s session, st navigation.State, form screen.CommentForm, modal, errKey string) {
	data := AddCommentData{
		Page:    h.page(s, navigation.AddComment, st, "addcomment.title"),
		Address: st.Address,
		Form:    form,
		Token:   h.guard.Issue(),
	}
	data.Modal = modal
	data.Error = errKey
	h.render(w, status, "addcomment.html", data)
}
