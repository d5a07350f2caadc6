package monitoring

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"

	"salesdash-backend/internal/metrics"
	"salesdash-backend/internal/session"
	"salesdash-backend/internal/upstream"
)

// MonitoringServer exposes gateway runtime stats on a separate port and
// pushes alerts to connected websocket clients.
type MonitoringServer struct {
	api        *upstream.Client
	session    *session.Store
	port       int
	startedAt  time.Time
	alerts     []Alert
	alertsMux  sync.RWMutex
	clients    map[*websocket.Conn]bool
	clientsMux sync.Mutex
	broadcast  chan Alert
}

type Alert struct {
	ID        int       `json:"id"`
	Severity  string    `json:"severity"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Resolved  bool      `json:"resolved"`
}

type DashboardStats struct {
	UpstreamStatus string  `json:"upstream_status"`
	ResponseTime   int64   `json:"response_time_ms"`
	SessionActive  bool    `json:"session_active"`
	ActiveAlerts   int     `json:"active_alerts"`
	CPUPercent     float64 `json:"cpu_percent"`
	MemoryPercent  float64 `json:"memory_percent"`
	DiskPercent    float64 `json:"disk_percent"`
	MemoryUsed     string  `json:"memory_used"`
	MemoryTotal    string  `json:"memory_total"`
	DiskUsed       string  `json:"disk_used"`
	DiskTotal      string  `json:"disk_total"`
	Uptime         string  `json:"uptime"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func NewMonitoringServer(api *upstream.Client, store *session.Store, port int) *MonitoringServer {
	return &MonitoringServer{
		api:       api,
		session:   store,
		port:      port,
		startedAt: time.Now(),
		alerts:    make([]Alert, 0),
		clients:   make(map[*websocket.Conn]bool),
		broadcast: make(chan Alert),
	}
}

func (ms *MonitoringServer) Start() {
	r := mux.NewRouter()

	r.HandleFunc("/api/stats", ms.getStats).Methods("GET")
	r.HandleFunc("/api/alerts", ms.getAlerts).Methods("GET")

	// WebSocket for real-time alert updates
	r.HandleFunc("/ws", ms.handleWebSocket)

	go ms.handleBroadcast()
	go ms.monitorHealth()

	addr := fmt.Sprintf(":%d", ms.port)
	log.Printf("[Monitoring] Stats server running on %s", addr)
	log.Fatal(http.ListenAndServe(addr, r))
}

func (ms *MonitoringServer) getStats(w http.ResponseWriter, r *http.Request) {
	stats := ms.collectStats()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

func (ms *MonitoringServer) collectStats() DashboardStats {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	err := ms.api.Ping(ctx)
	responseTime := time.Since(start).Milliseconds()

	upstreamStatus := "healthy"
	if err != nil {
		upstreamStatus = "unhealthy"
	}

	sessionActive := ms.session.Authenticated()
	if sessionActive {
		metrics.SessionAuthenticated.Set(1)
	} else {
		metrics.SessionAuthenticated.Set(0)
	}

	cpuPercents, _ := cpu.Percent(time.Second, false)
	cpuPercent := 0.0
	if len(cpuPercents) > 0 {
		cpuPercent = cpuPercents[0]
	}

	memStats, _ := mem.VirtualMemory()
	diskStats, _ := disk.Usage("/")

	ms.alertsMux.RLock()
	activeAlertCount := 0
	for _, alert := range ms.alerts {
		if !alert.Resolved {
			activeAlertCount++
		}
	}
	ms.alertsMux.RUnlock()

	return DashboardStats{
		UpstreamStatus: upstreamStatus,
		ResponseTime:   responseTime,
		SessionActive:  sessionActive,
		ActiveAlerts:   activeAlertCount,
		CPUPercent:     cpuPercent,
		MemoryPercent:  memStats.UsedPercent,
		DiskPercent:    diskStats.UsedPercent,
		MemoryUsed:     formatBytes(memStats.Used),
		MemoryTotal:    formatBytes(memStats.Total),
		DiskUsed:       formatBytes(diskStats.Used),
		DiskTotal:      formatBytes(diskStats.Total),
		Uptime:         formatUptime(int(time.Since(ms.startedAt).Seconds())),
	}
}

func formatBytes(bytes uint64) string {
	gb := float64(bytes) / (1024 * 1024 * 1024)
	if gb < 1 {
		mb := float64(bytes) / (1024 * 1024)
		return fmt.Sprintf("%.1f MB", mb)
	}
	return fmt.Sprintf("%.1f GB", gb)
}

func formatUptime(seconds int) string {
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	minutes := (seconds % 3600) / 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh", days, hours)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

func (ms *MonitoringServer) getAlerts(w http.ResponseWriter, r *http.Request) {
	ms.alertsMux.RLock()
	defer ms.alertsMux.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ms.alerts)
}

func (ms *MonitoringServer) raiseAlert(severity, alertType, message string) {
	ms.alertsMux.Lock()
	alert := Alert{
		ID:        len(ms.alerts) + 1,
		Severity:  severity,
		Type:      alertType,
		Message:   message,
		Timestamp: time.Now(),
	}
	ms.alerts = append(ms.alerts, alert)
	ms.alertsMux.Unlock()

	ms.broadcast <- alert
}

// monitorHealth raises an alert on each upstream reachability transition.
func (ms *MonitoringServer) monitorHealth() {
	healthy := true
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := ms.api.Ping(ctx)
		cancel()

		if err != nil && healthy {
			healthy = false
			ms.raiseAlert("critical", "upstream", "Tracking API unreachable: "+err.Error())
		} else if err == nil && !healthy {
			healthy = true
			ms.raiseAlert("info", "upstream", "Tracking API reachable again")
		}
	}
}

func (ms *MonitoringServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	ms.clientsMux.Lock()
	ms.clients[conn] = true
	ms.clientsMux.Unlock()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			ms.clientsMux.Lock()
			delete(ms.clients, conn)
			ms.clientsMux.Unlock()
			break
		}
	}
}

func (ms *MonitoringServer) handleBroadcast() {
	for alert := range ms.broadcast {
		ms.clientsMux.Lock()
		for conn := range ms.clients {
			if err := conn.WriteJSON(alert); err != nil {
				conn.Close()
				delete(ms.clients, conn)
			}
		}
		ms.clientsMux.Unlock()
	}
}
