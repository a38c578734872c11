package service

import (
	"context"
	"errors"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/d60-Lab/bingeboard/internal/model"
	"github.com/d60-Lab/bingeboard/internal/repository"
)

var ErrUnknownMedia = errors.New("unknown media")

// PostService fronts the post/comment repositories and strips HTML out
// of user-supplied text before it reaches storage.
type PostService struct {
	posts     repository.PostRepository
	comments  repository.CommentRepository
	media     repository.MediaRepository
	sanitizer *bluemonday.Policy
}

func NewPostService(posts repository.PostRepository, comments repository.CommentRepository, media repository.MediaRepository) *PostService {
	return &PostService{
		posts:     posts,
		comments:  comments,
		media:     media,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *PostService) clean(text string) string {
	return strings.TrimSpace(s.sanitizer.Sanitize(text))
}

func (s *PostService) Create(ctx context.Context, userID, mediaID uint, title, content string, spoiler bool, rating *int) (uint, error) {
	m, err := s.media.ByID(ctx, mediaID)
	if err != nil {
		return 0, err
	}
	if m == nil {
		return 0, ErrUnknownMedia
	}
	return s.posts.Create(ctx, userID, mediaID, s.clean(title), s.clean(content), spoiler, rating)
}

func (s *PostService) Edit(ctx context.Context, userID, postID uint, content string) (bool, error) {
	return s.posts.Edit(ctx, userID, postID, s.clean(content))
}

func (s *PostService) Delete(ctx context.Context, userID, postID uint) (bool, error) {
	return s.posts.Delete(ctx, userID, postID)
}

func (s *PostService) Get(ctx context.Context, postID uint) (*model.FeedItem, error) {
	return s.posts.Get(ctx, postID)
}

func (s *PostService) Feed(ctx context.Context, userID uint) ([]model.FeedItem, error) {
	return s.posts.Feed(ctx, userID)
}

func (s *PostService) AddComment(ctx context.Context, userID, postID uint, content string) (uint, error) {
	return s.comments.Add(ctx, userID, postID, s.clean(content))
}

func (s *PostService) DeleteComment(ctx context.Context, userID, commentID uint) (bool, error) {
	return s.comments.Delete(ctx, userID, commentID)
}

func (s *PostService) Comments(ctx context.Context, postID uint) ([]model.CommentView, error) {
	return s.comments.ForPost(ctx, postID)
}
