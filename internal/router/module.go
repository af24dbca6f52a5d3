package router

import "github.com/gin-gonic/gin"

// Module is a self-contained route surface (patients, auth, debug) that mounts
// its routes on the shared API group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
