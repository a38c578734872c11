package service

import (
	"context"
	"errors"

	"github.com/d60-Lab/bingeboard/internal/model"
	"github.com/d60-Lab/bingeboard/internal/repository"
)

var ErrUnknownWatchState = errors.New("unknown watch state")

// WatchService multiplexes the three watch-state relations behind one
// surface; the handler picks the relation by route.
type WatchService struct {
	states map[string]repository.WatchRepository
}

func NewWatchService(watched, watching, watchlist repository.WatchRepository) *WatchService {
	return &WatchService{states: map[string]repository.WatchRepository{
		model.TableWatched:   watched,
		model.TableWatching:  watching,
		model.TableWatchlist: watchlist,
	}}
}

func (s *WatchService) repo(state string) (repository.WatchRepository, error) {
	r, ok := s.states[state]
	if !ok {
		return nil, ErrUnknownWatchState
	}
	return r, nil
}

func (s *WatchService) Add(ctx context.Context, state string, userID uint, title string) (bool, error) {
	r, err := s.repo(state)
	if err != nil {
		return false, err
	}
	return r.Add(ctx, userID, title)
}

func (s *WatchService) Remove(ctx context.Context, state string, userID uint, title string) (bool, error) {
	r, err := s.repo(state)
	if err != nil {
		return false, err
	}
	return r.Remove(ctx, userID, title)
}

func (s *WatchService) Titles(ctx context.Context, state string, userID uint) ([]string, error) {
	r, err := s.repo(state)
	if err != nil {
		return nil, err
	}
	return r.Titles(ctx, userID)
}

func (s *WatchService) Media(ctx context.Context, state string, userID uint) ([]model.TVMovie, error) {
	r, err := s.repo(state)
	if err != nil {
		return nil, err
	}
	return r.Media(ctx, userID)
}
