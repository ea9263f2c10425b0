package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yudhapratama/survei-server/config"
	"github.com/yudhapratama/survei-server/models"
	"github.com/yudhapratama/survei-server/realtime"
	"github.com/yudhapratama/survei-server/view"
)

// LiveHub menyiarkan setiap Response baru ke koneksi stream yang terbuka.
var LiveHub = realtime.NewHub()

// GET /api/responses/stream?preset=today&rating=all
// SSE: satu event "snapshot" berisi keadaan awal, lalu event "inserted" untuk
// tiap lembar baru yang lolos filter koneksi ini. Penyaringan memakai
// predicate yang sama dengan query, dan merge-nya idempoten per id.
func StreamResponses(c *gin.Context) {
	vs, err := parseViewState(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := view.NewSession(vs)
	state, seq := sess.State()

	q, err := state.Apply(config.DB, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var rows []models.Response
	if err := state.Paginate(q).Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Tidak bisa mengambil data awal"})
		return
	}
	sess.ApplySnapshot(seq, rows)

	subID, ch := LiveHub.Subscribe()
	defer LiveHub.Unsubscribe(subID)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.SSEvent("snapshot", gin.H{
		"rows":     sess.Rows(),
		"has_more": sess.HasMore(),
	})
	c.Writer.Flush()

	clientGone := c.Request.Context().Done()
	keepAlive := time.NewTicker(30 * time.Second)
	defer keepAlive.Stop()

	for {
		select {
		case <-clientGone:
			return
		case <-keepAlive.C:
			c.SSEvent("ping", time.Now().Unix())
			c.Writer.Flush()
		case r, ok := <-ch:
			if !ok {
				return
			}
			if sess.MergeInserted(r, time.Now()) {
				c.SSEvent("inserted", r)
				c.Writer.Flush()
			}
		}
	}
}
