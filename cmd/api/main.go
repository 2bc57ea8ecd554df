package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sumitdoescode/Clicks/config"
	"github.com/sumitdoescode/Clicks/internal/database"
	engagementHttp "github.com/sumitdoescode/Clicks/internal/engagement/delivery/http"
	engagementRepository "github.com/sumitdoescode/Clicks/internal/engagement/repository"
	engagementUsecase "github.com/sumitdoescode/Clicks/internal/engagement/usecase"
	messagingHttp "github.com/sumitdoescode/Clicks/internal/messaging/delivery/http"
	messagingRepository "github.com/sumitdoescode/Clicks/internal/messaging/repository"
	messagingUsecase "github.com/sumitdoescode/Clicks/internal/messaging/usecase"
	"github.com/sumitdoescode/Clicks/internal/middleware"
	postHttp "github.com/sumitdoescode/Clicks/internal/post/delivery/http"
	postRepository "github.com/sumitdoescode/Clicks/internal/post/repository"
	postUsecase "github.com/sumitdoescode/Clicks/internal/post/usecase"
	userHttp "github.com/sumitdoescode/Clicks/internal/user/delivery/http"
	userRepository "github.com/sumitdoescode/Clicks/internal/user/repository"
	userUsecase "github.com/sumitdoescode/Clicks/internal/user/usecase"
	"github.com/sumitdoescode/Clicks/pkg/logger"
	"github.com/sumitdoescode/Clicks/pkg/storage"
)

func main() {
	v, err := config.LoadConfig("config")
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		log.Fatal("failed to parse config: ", err)
	}

	appLogger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatal("failed to init logger: ", err)
	}

	db, err := database.NewPostgres(cfg)
	if err != nil {
		log.Fatal("failed to connect to postgres: ", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.Migrate(ctx, db); err != nil {
		cancel()
		log.Fatal("failed to run migrations: ", err)
	}
	cancel()

	store, err := storage.NewLocalStore(cfg.Storage)
	if err != nil {
		log.Fatal("failed to init storage: ", err)
	}

	userRepo := userRepository.NewUserRepository(db, appLogger)
	postRepo := postRepository.NewPostRepository(db, appLogger)
	engagementRepo := engagementRepository.NewEngagementRepository(db, appLogger)
	messagingRepo := messagingRepository.NewMessagingRepository(db, appLogger)

	userUC := userUsecase.NewUserUsecase(userRepo, store, appLogger, cfg)
	postUC := postUsecase.NewPostUsecase(postRepo, userRepo, store, appLogger)
	engagementUC := engagementUsecase.NewEngagementUsecase(engagementRepo, postRepo, appLogger)
	messagingUC := messagingUsecase.NewMessagingUsecase(messagingRepo, userRepo, appLogger)

	userH := userHttp.NewUserHandler(userUC)
	postH := postHttp.NewPostHandler(postUC)
	engagementH := engagementHttp.NewEngagementHandler(engagementUC)
	messagingH := messagingHttp.NewMessagingHandler(messagingUC)

	if !cfg.LoggerMode.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Static(cfg.Storage.BaseURL, store.Dir())

	api := r.Group("/api/v1")

	api.GET("/healthcheck", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "database unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "ok"})
	})

	api.POST("/auth/register", userH.Register)
	api.POST("/auth/login", userH.Login)

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(cfg.JWT.Secret))

	authed.GET("/users", userH.ListUsers)
	authed.GET("/user/:username", userH.GetProfile)
	authed.PUT("/user", userH.UpdateProfile)
	authed.DELETE("/user", userH.DeleteAccount)
	authed.POST("/user/:username/follow", userH.ToggleFollow)
	authed.GET("/user/:username/followers", userH.Followers)
	authed.GET("/user/:username/following", userH.Following)

	authed.POST("/post", postH.CreatePost)
	authed.GET("/post", postH.GetFeed)
	authed.GET("/post/user/:username", postH.GetPostsByUsername)
	authed.GET("/post/:id", postH.GetPostByID)
	authed.PUT("/post/:id", postH.UpdateCaption)
	authed.DELETE("/post/:id", postH.DeletePost)

	authed.POST("/like/post/:id", engagementH.ToggleLike)
	authed.POST("/bookmark/post/:id", engagementH.ToggleBookmark)
	authed.POST("/comment/post/:id", engagementH.AddComment)
	authed.GET("/comment/post/:id", engagementH.GetComments)
	authed.DELETE("/comment/:id", engagementH.DeleteComment)
	authed.GET("/likes", engagementH.LikedPosts)
	authed.GET("/bookmarks", engagementH.BookmarkedPosts)

	authed.POST("/message/user/:username", messagingH.SendMessage)
	authed.GET("/message/user/:username", messagingH.GetThread)
	authed.GET("/conversation", messagingH.ListConversations)
	authed.DELETE("/conversation/:id", messagingH.DeleteConversation)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		appLogger.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped: ", err)
		}
	}()

	<-rootCtx.Done()
	appLogger.Info("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("forced shutdown", "err", err)
	}
}
