package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yudhapratama/survei-server/utils"
)

// Draft identitas hidup paling lama 2 jam; lebih dari itu pengisi dianggap
// sudah pergi.
var drafts = utils.NewDraftStore(2 * time.Hour)

const maxDraftSize = 4 << 10

// PUT /api/drafts/:key
// Menyimpan bagian identitas dari survei yang sedang diisi (langkah 1 dari 2).
func PutDraft(c *gin.Context) {
	key := c.Param("key")

	body, err := c.GetRawData()
	if err != nil || len(body) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Body kosong"})
		return
	}
	if len(body) > maxDraftSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Draft terlalu besar"})
		return
	}
	if !json.Valid(body) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Draft harus JSON valid"})
		return
	}

	drafts.Put(key, json.RawMessage(body))
	c.JSON(http.StatusOK, gin.H{"message": "Draft tersimpan"})
}

// GET /api/drafts/:key
func GetDraft(c *gin.Context) {
	data, ok := drafts.Get(c.Param("key"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Draft tidak ada atau kedaluwarsa"})
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

// DELETE /api/drafts/:key
func DeleteDraft(c *gin.Context) {
	drafts.Delete(c.Param("key"))
	c.JSON(http.StatusOK, gin.H{"message": "Draft dihapus"})
}
