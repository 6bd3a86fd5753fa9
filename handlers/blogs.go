package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sogcms/content-api/internal/blogs"
)

// RegisterBlogRoutes registers the blog-post CRUD endpoints.
func RegisterBlogRoutes(r *gin.Engine, svc *blogs.Service) {
	r.GET("/api/blogs", func(c *gin.Context) {
		limit, page, err := pageParams(c)
		if err != nil {
			badRequest(c, "blogs", "list", err)
			return
		}
		list, err := svc.List(c.Request.Context(), limit, page)
		if err != nil {
			fail(c, "blogs", "list", err)
			return
		}
		ok(c, "blogs", "list", http.StatusOK, gin.H{"status": "success", "results": len(list), "blogs": list})
	})

	r.POST("/api/blogs/new", func(c *gin.Context) {
		var schema blogs.CreateSchema
		if err := c.ShouldBindJSON(&schema); err != nil {
			badRequest(c, "blogs", "create", err)
			return
		}
		b, err := svc.Create(c.Request.Context(), &schema)
		if err != nil {
			fail(c, "blogs", "create", err)
			return
		}
		ok(c, "blogs", "create", http.StatusCreated, gin.H{"status": "success", "data": gin.H{"blog": b}})
	})

	r.GET("/api/blogs/:id", func(c *gin.Context) {
		b, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, "blogs", "get", err)
			return
		}
		ok(c, "blogs", "get", http.StatusOK, gin.H{"status": "success", "data": gin.H{"blog": b}})
	})

	r.PATCH("/api/blogs/:id", func(c *gin.Context) {
		var schema blogs.UpdateSchema
		if err := c.ShouldBindJSON(&schema); err != nil {
			badRequest(c, "blogs", "update", err)
			return
		}
		b, err := svc.Update(c.Request.Context(), c.Param("id"), &schema)
		if err != nil {
			fail(c, "blogs", "update", err)
			return
		}
		ok(c, "blogs", "update", http.StatusOK, gin.H{"status": "success", "data": gin.H{"blog": b}})
	})

	r.DELETE("/api/blogs/:id", func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			fail(c, "blogs", "delete", err)
			return
		}
		ok(c, "blogs", "delete", http.StatusNoContent, nil)
	})
}
