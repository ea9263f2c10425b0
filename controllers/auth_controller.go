package controllers

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"

	"github.com/yudhapratama/survei-server/config"
	"github.com/yudhapratama/survei-server/middleware"
	"github.com/yudhapratama/survei-server/models"
	"github.com/yudhapratama/survei-server/utils"
)

type LoginReq struct {
	Email string `json:"email" binding:"required,email"`
	Sandi string `json:"sandi" binding:"required"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	var user models.Pengguna
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Email atau sandi salah"})
		return
	}
	if !utils.CheckPassword(user.Sandi, req.Sandi) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Email atau sandi salah"})
		return
	}

	token, err := utils.GenerateToken(fmt.Sprint(user.ID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Tidak bisa membuat token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

type GoogleLoginReq struct {
	IDToken string `json:"id_token" binding:"required"`
}

// POST /api/auth/google/login
// Login petugas via Google: token diverifikasi ke Google, lalu email harus
// sudah terdaftar sebagai akun petugas. Tidak ada pendaftaran otomatis.
func GoogleLoginHandler(c *gin.Context) {
	var req GoogleLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	if clientID == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Login Google belum dikonfigurasi"})
		return
	}

	payload, err := idtoken.Validate(c.Request.Context(), req.IDToken, clientID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Token Google tidak valid"})
		return
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Token Google tanpa email"})
		return
	}

	var user models.Pengguna
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"message": "Email belum terdaftar sebagai petugas"})
		return
	}

	token, err := utils.GenerateToken(fmt.Sprint(user.ID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Tidak bisa membuat token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// GET /api/me
func Me(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.Pengguna)
	c.JSON(http.StatusOK, gin.H{"user": u})
}
