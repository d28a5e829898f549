package handlers

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

var startTime = time.Now()

func (h HandlerSet) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "imagerelay API up",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"storage":   h.store.Configured(),
	})
}

func (h HandlerSet) Health(c *gin.Context) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	memory := gin.H{
		"allocBytes": ms.Alloc,
		"sysBytes":   ms.Sys,
	}

	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if info, err := proc.MemoryInfo(); err == nil {
			memory["rssBytes"] = info.RSS
		}
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		memory["systemUsedPercent"] = vm.UsedPercent
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"environment": gin.H{
			"name":          h.cfg.Environment,
			"goVersion":     runtime.Version(),
			"pid":           os.Getpid(),
			"uptimeSeconds": int64(time.Since(startTime).Seconds()),
			"memory":        memory,
			"storage":       h.store.Configured(),
		},
	})
}
