package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sogcms/content-api/internal/users"
)

// RegisterUserRoutes registers the user CRUD endpoints.
func RegisterUserRoutes(r *gin.Engine, svc *users.Service) {
	r.GET("/api/users", func(c *gin.Context) {
		limit, page, err := pageParams(c)
		if err != nil {
			badRequest(c, "users", "list", err)
			return
		}
		list, err := svc.List(c.Request.Context(), limit, page)
		if err != nil {
			fail(c, "users", "list", err)
			return
		}
		ok(c, "users", "list", http.StatusOK, gin.H{"status": "success", "results": len(list), "users": list})
	})

	r.POST("/api/users/new", func(c *gin.Context) {
		var schema users.CreateSchema
		if err := c.ShouldBindJSON(&schema); err != nil {
			badRequest(c, "users", "create", err)
			return
		}
		u, err := svc.Create(c.Request.Context(), &schema)
		if err != nil {
			fail(c, "users", "create", err)
			return
		}
		ok(c, "users", "create", http.StatusCreated, gin.H{"status": "success", "data": gin.H{"user": u}})
	})

	r.GET("/api/users/:id", func(c *gin.Context) {
		u, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, "users", "get", err)
			return
		}
		ok(c, "users", "get", http.StatusOK, gin.H{"status": "success", "data": gin.H{"user": u}})
	})

	r.PATCH("/api/users/:id", func(c *gin.Context) {
		var schema users.UpdateSchema
		if err := c.ShouldBindJSON(&schema); err != nil {
			badRequest(c, "users", "update", err)
			return
		}
		u, err := svc.Update(c.Request.Context(), c.Param("id"), &schema)
		if err != nil {
			fail(c, "users", "update", err)
			return
		}
		ok(c, "users", "update", http.StatusOK, gin.H{"status": "success", "data": gin.H{"user": u}})
	})

	r.DELETE("/api/users/:id", func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			fail(c, "users", "delete", err)
			return
		}
		ok(c, "users", "delete", http.StatusNoContent, nil)
	})
}
