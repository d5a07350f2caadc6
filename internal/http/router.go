package http

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"salesdash-backend/internal/handlers"
	"salesdash-backend/internal/middleware"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	salesmanHandler *handlers.SalesmanHandler,
	clientHandler *handlers.ClientHandler,
	productHandler *handlers.ProductHandler,
	orderHandler *handlers.OrderHandler,
	returnHandler *handlers.ReturnHandler,
	taskHandler *handlers.TaskHandler,
	rewardHandler *handlers.RewardHandler,
	leaderboardHandler *handlers.LeaderboardHandler,
	messageHandler *handlers.MessageHandler,
	reportHandler *handlers.ReportHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public routes - Authentication and probes
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")
	r.HandleFunc("/auth/session", authHandler.Status).Methods("GET")

	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Protected API routes - Salesmen
	salesmenAPI := r.PathPrefix("/api/salesmen").Subrouter()
	salesmenAPI.Use(authMiddleware.Authenticate)
	salesmenAPI.HandleFunc("", salesmanHandler.ListSalesmen).Methods("GET")
	salesmenAPI.HandleFunc("/{id}", salesmanHandler.EditSalesman).Methods("PUT")
	salesmenAPI.HandleFunc("/{id}", salesmanHandler.DeleteSalesman).Methods("DELETE")
	salesmenAPI.HandleFunc("/{id}/points", salesmanHandler.AdjustPoints).Methods("POST")

	// Protected API routes - Clients
	clientsAPI := r.PathPrefix("/api/clients").Subrouter()
	clientsAPI.Use(authMiddleware.Authenticate)
	clientsAPI.HandleFunc("", clientHandler.ListClients).Methods("GET")
	clientsAPI.HandleFunc("", clientHandler.CreateClient).Methods("POST")
	clientsAPI.HandleFunc("/{id}", clientHandler.EditClient).Methods("PUT")
	clientsAPI.HandleFunc("/{id}", clientHandler.DeleteClient).Methods("DELETE")

	// Protected API routes - Products
	productsAPI := r.PathPrefix("/api/products").Subrouter()
	productsAPI.Use(authMiddleware.Authenticate)
	productsAPI.HandleFunc("", productHandler.ListProducts).Methods("GET")
	productsAPI.HandleFunc("", productHandler.CreateProduct).Methods("POST")
	productsAPI.HandleFunc("/{id}", productHandler.EditProduct).Methods("PUT")
	productsAPI.HandleFunc("/{id}", productHandler.DeleteProduct).Methods("DELETE")

	// Protected API routes - Orders
	ordersAPI := r.PathPrefix("/api/orders").Subrouter()
	ordersAPI.Use(authMiddleware.Authenticate)
	ordersAPI.HandleFunc("", orderHandler.ListOrders).Methods("GET")
	ordersAPI.HandleFunc("/{id}", orderHandler.EditOrder).Methods("PUT")
	ordersAPI.HandleFunc("/{id}", orderHandler.DeleteOrder).Methods("DELETE")

	// Protected API routes - Returns
	returnsAPI := r.PathPrefix("/api/returns").Subrouter()
	returnsAPI.Use(authMiddleware.Authenticate)
	returnsAPI.HandleFunc("", returnHandler.ListReturns).Methods("GET")
	returnsAPI.HandleFunc("/{id}/approve", returnHandler.ApproveReturn).Methods("POST")
	returnsAPI.HandleFunc("/{id}/reject", returnHandler.RejectReturn).Methods("POST")

	// Protected API routes - Tasks and attendance
	tasksAPI := r.PathPrefix("/api/tasks").Subrouter()
	tasksAPI.Use(authMiddleware.Authenticate)
	tasksAPI.HandleFunc("", taskHandler.ListTasks).Methods("GET")
	tasksAPI.HandleFunc("", taskHandler.AssignTask).Methods("POST")

	attendanceAPI := r.PathPrefix("/api/attendance").Subrouter()
	attendanceAPI.Use(authMiddleware.Authenticate)
	attendanceAPI.HandleFunc("", taskHandler.ListAttendance).Methods("GET")

	// Protected API routes - Rewards and redemptions
	rewardsAPI := r.PathPrefix("/api/rewards").Subrouter()
	rewardsAPI.Use(authMiddleware.Authenticate)
	rewardsAPI.HandleFunc("", rewardHandler.ListRewards).Methods("GET")
	rewardsAPI.HandleFunc("", rewardHandler.CreateReward).Methods("POST")
	rewardsAPI.HandleFunc("/{id}", rewardHandler.EditReward).Methods("PUT")
	rewardsAPI.HandleFunc("/{id}", rewardHandler.DeleteReward).Methods("DELETE")

	redemptionsAPI := r.PathPrefix("/api/redemptions").Subrouter()
	redemptionsAPI.Use(authMiddleware.Authenticate)
	redemptionsAPI.HandleFunc("", rewardHandler.ListRedemptions).Methods("GET")
	redemptionsAPI.HandleFunc("/{id}/approve", rewardHandler.ApproveRedemption).Methods("POST")
	redemptionsAPI.HandleFunc("/{id}/reject", rewardHandler.RejectRedemption).Methods("POST")

	// Protected API routes - Leaderboard
	leaderboardAPI := r.PathPrefix("/api/leaderboard").Subrouter()
	leaderboardAPI.Use(authMiddleware.Authenticate)
	leaderboardAPI.HandleFunc("", leaderboardHandler.GetLeaderboard).Methods("GET")
	leaderboardAPI.HandleFunc("/export", leaderboardHandler.ExportLeaderboard).Methods("GET")

	// Protected API routes - Messages
	messagesAPI := r.PathPrefix("/api/messages").Subrouter()
	messagesAPI.Use(authMiddleware.Authenticate)
	messagesAPI.HandleFunc("/{salesmanId}", messageHandler.GetConversation).Methods("GET")
	messagesAPI.HandleFunc("/{salesmanId}", messageHandler.SendMessage).Methods("POST")

	// Protected API routes - Reports
	reportsAPI := r.PathPrefix("/api/reports").Subrouter()
	reportsAPI.Use(authMiddleware.Authenticate)
	reportsAPI.HandleFunc("/performance", reportHandler.GetPerformanceReport).Methods("GET")
	reportsAPI.HandleFunc("/performance/export", reportHandler.ExportPerformanceReport).Methods("GET")
	reportsAPI.HandleFunc("/rewards", reportHandler.GetRewardReport).Methods("GET")
	reportsAPI.HandleFunc("/rewards/export", reportHandler.ExportRewardReport).Methods("GET")

	return r
}
