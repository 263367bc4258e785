package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handlers ルーティングに登録するハンドラー一式
type Handlers struct {
	Places          *PlacesHandler
	Members         *MembersHandler
	CheckIns        *CheckInsHandler
	Recommendations *RecommendationHandler
}

// RegisterRoutes 全エンドポイントをルーターに登録
func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "MuTeLu API is running",
		})
	})

	places := r.Group("/places")
	{
		places.GET("", h.Places.ListPlaces)
		places.GET("/nearby", h.Places.GetNearbyPlaces)
		places.GET("/:id", h.Places.GetPlaceDetail)
		places.GET("/:id/route", h.Places.GetWalkingRoute)
	}

	r.GET("/tags", h.Places.ListTags)

	members := r.Group("/members")
	{
		members.POST("", h.Members.Register)
		members.POST("/login", h.Members.Login)
		members.GET("", h.Members.ListMembers)
		members.GET("/:email", h.Members.GetMember)
		members.PUT("/:email", h.Members.UpdateMember)
		members.PATCH("/:email/status", h.Members.UpdateStatus)
		members.DELETE("/:email", h.Members.DeleteMember)

		members.GET("/:email/checkins", h.CheckIns.GetHistory)
		members.DELETE("/:email/checkins", h.CheckIns.ClearHistory)
		members.GET("/:email/merit", h.CheckIns.GetMeritSummary)
		members.GET("/:email/recommendations", h.Recommendations.GetRecommendations)
	}

	r.POST("/checkins", h.CheckIns.CheckIn)
	r.POST("/admin/catalog/reload", h.Recommendations.ReloadCatalog)
}
