package models

// PerformanceReport is the general dashboard aggregate.
type PerformanceReport struct {
	TotalSalesAmount     float64 `json:"totalSalesAmount"`
	TotalCompletedOrders int     `json:"totalCompletedOrders"`
	AttendancePercentage float64 `json:"attendancePercentage"`
	TotalExpenseAmount   float64 `json:"totalExpenseAmount"`
}

// RewardReport is the reward distribution aggregate.
type RewardReport struct {
	TotalPoints          int `json:"totalPoints"`
	TotalRewardsRedeemed int `json:"totalRewardsRedeemed"`
	PendingApprovals     int `json:"pendingApprovals"`
}

// LeaderboardResponse wraps GET /api/leaderboard.
type LeaderboardResponse struct {
	CurrentPage int        `json:"currentPage"`
	TotalPages  int        `json:"totalPages"`
	TotalUsers  int        `json:"totalUsers"`
	Leaderboard []Salesman `json:"leaderboard"`
}

// LoginRequest is the admin login payload passed through to the upstream.
type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer credential issued by the upstream.
type LoginResponse struct {
	Token string `json:"token"`
}
