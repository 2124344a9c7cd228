package api

import (
	"queueup/karaoke-backend/internal/api/handler/karaoke"
	"queueup/karaoke-backend/internal/api/handler/session"
	"queueup/karaoke-backend/internal/api/handler/song"
	"queueup/karaoke-backend/internal/api/middleware"
	"queueup/karaoke-backend/internal/ws"
)

// SetupAPIRoutes
// @title						Karaoke Queue Service
// @version         			1.0.0
// @description     			Shared karaoke session queue with fair round-robin ordering
// @Host 						localhost:8080
// @BasePath  					/
// @Schemes 					https
func (s *Server) SetupAPIRoutes(
	sessionHandler *session.SessionHandler,
	karaokeHandler *karaoke.KaraokeHandler,
	songHandler *song.SongHandler,
	wsHandler *ws.Handler,
) {
	r := s.engine

	v1 := r.Group("v1")
	v1.Use(middleware.HandleAuth())
	{
		v1.POST("/sessions", sessionHandler.Create)
		v1.GET("/sessions/:code", sessionHandler.Get)
		v1.DELETE("/sessions/:code", sessionHandler.End)
		v1.POST("/sessions/:code/join", karaokeHandler.Join)

		v1.GET("/sessions/:code/queue", karaokeHandler.GetQueue)
		v1.POST("/sessions/:code/queue", karaokeHandler.AddSong)
		v1.DELETE("/sessions/:code/queue/:entryId", karaokeHandler.RemoveSong)
		v1.POST("/sessions/:code/queue/next", karaokeHandler.PlayNext)
		v1.GET("/sessions/:code/history", karaokeHandler.History)

		v1.GET("/songs/search", songHandler.Search)
	}

	// viewer push channel; browsers cannot set auth headers on websocket
	// upgrades so this group skips the auth middleware
	r.GET("/ws/sessions/:code", wsHandler.Subscribe)
}
