package handler

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/lumengallery/internal/db"
	"github.com/lumengallery/internal/service"
)

// sessionTokenKey 为 Cookie 会话中保存服务端会话令牌的键名
const sessionTokenKey = "token"

// currentUserKey 为 gin 上下文中缓存已认证用户的键名
const currentUserKey = "__current_user"

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies credentials, issues a server-side session and binds
// its token to the cookie.
func (a *API) Login(c *gin.Context) {
	var payload loginPayload
	if !bindJSON(c, &payload, "Invalid request body") {
		return
	}

	user, record, err := a.auth.Login(payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "Incorrect username or password")
			return
		}
		respondError(c, http.StatusInternalServerError, "Login failed")
		return
	}

	session := sessions.Default(c)
	session.Set(sessionTokenKey, record.Token)
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "user": user})
}

// Logout destroys the session record and clears the cookie. Idempotent.
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	if err := a.auth.Logout(sessionToken(c)); err != nil {
		respondError(c, http.StatusInternalServerError, "Logout failed")
		return
	}

	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	_ = session.Save()

	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// Me returns the authenticated user bound to the current session.
func (a *API) Me(c *gin.Context) {
	user, err := a.auth.CurrentUser(sessionToken(c))
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			respondError(c, http.StatusUnauthorized, "Not authenticated")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to resolve session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// RequireAuth 认证中间件：未通过会话解析出用户时直接以 401 响应结束请求
func (a *API) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := a.auth.CurrentUser(sessionToken(c))
		if err != nil {
			respondError(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// sessionToken 从 Cookie 会话中取出服务端会话令牌
func sessionToken(c *gin.Context) string {
	value := sessions.Default(c).Get(sessionTokenKey)
	token, ok := value.(string)
	if !ok {
		return ""
	}
	return token
}

// currentUser returns the user stashed by RequireAuth, if any.
func currentUser(c *gin.Context) (*db.User, bool) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*db.User)
	return user, ok
}
