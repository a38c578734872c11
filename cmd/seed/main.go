package main

import (
	"context"
	"fmt"
	"time"

	"github.com/d60-Lab/bingeboard/config"
	"github.com/d60-Lab/bingeboard/internal/model"
	"github.com/d60-Lab/bingeboard/internal/repository"
	"github.com/d60-Lab/bingeboard/internal/service"
	"github.com/d60-Lab/bingeboard/pkg/database"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Seeds a development database with a small social graph: three users,
// three titles, a post and a comment each, follows and watch rows.
func main() {
	cfg := must(config.Load())
	db := must(database.InitDB(cfg))

	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	watched := repository.NewWatchRepository(db, model.TableWatched)
	watching := repository.NewWatchRepository(db, model.TableWatching)
	watchlist := repository.NewWatchRepository(db, model.TableWatchlist)
	auth := service.NewAuthService(userRepo, service.NewMemoryTokenStore(), cfg.JWT.Secret, cfg.JWT.TTL)

	ctx := context.Background()

	alice := must(auth.Register(ctx, "Alice", "Smith", "alice123", "alice@example.com", "pass123pass"))
	bob := must(auth.Register(ctx, "Bob", "Jones", "bobby", "bob@example.com", "secretsecret"))
	charlie := must(auth.Register(ctx, "Charlie", "Brown", "charlieB", "charlie@example.com", "chocochoco"))

	bb := must(mediaRepo.Create(ctx, "Breaking Bad", "Drama", "2008", model.MediaTypeTV))
	inception := must(mediaRepo.Create(ctx, "Inception", "Sci-Fi", "2010", model.MediaTypeMovie))
	friends := must(mediaRepo.Create(ctx, "Friends", "Comedy", "1994", model.MediaTypeTV))

	p1 := must(postRepo.Create(ctx, alice.UserID, bb.MediaID, "Amazing Episode!", "Loved the ending!", true, nil))
	rating := 9
	p2 := must(postRepo.Create(ctx, bob.UserID, inception.MediaID, "Mind-bending Movie", "Inception blew my mind!", false, &rating))
	p3 := must(postRepo.Create(ctx, charlie.UserID, friends.MediaID, "Classic Show", "Friends never gets old.", false, nil))

	must(commentRepo.Add(ctx, bob.UserID, p1, "I agree, best episode yet!"))
	must(commentRepo.Add(ctx, charlie.UserID, p2, "The ending confused me."))
	must(commentRepo.Add(ctx, alice.UserID, p3, "Still watching reruns!"))

	must(followRepo.Follow(ctx, bob.UserID, alice.UserID))
	must(followRepo.Follow(ctx, charlie.UserID, alice.UserID))
	must(followRepo.Follow(ctx, charlie.UserID, bob.UserID))

	must(watched.Add(ctx, alice.UserID, "Breaking Bad"))
	must(watched.Add(ctx, bob.UserID, "Inception"))
	must(watching.Add(ctx, charlie.UserID, "Friends"))
	must(watchlist.Add(ctx, alice.UserID, "Inception"))
	must(watchlist.Add(ctx, bob.UserID, "Friends"))

	feed := must(postRepo.Feed(ctx, charlie.UserID))
	fmt.Printf("seeded at %s; charlie's feed has %d posts\n", time.Now().Format(time.RFC3339), len(feed))
}
