package models

// Reward is a catalog entry salesmen redeem points against.
type Reward struct {
	ID                string `json:"_id"`
	RewardName        string `json:"rewardName"`
	PointsRequired    int    `json:"pointsRequired"`
	QuantityAvailable int    `json:"quantityAvailable"`
	RewardImageURL    string `json:"rewardImageURL,omitempty"`
}

type RewardRequest struct {
	RewardName        string `json:"rewardName"`
	PointsRequired    int    `json:"pointsRequired"`
	QuantityAvailable int    `json:"quantityAvailable"`
	RewardImageURL    string `json:"rewardImageURL,omitempty"`
}

// Redemption request statuses as the upstream spells them.
const (
	RedemptionPending  = "Pending"
	RedemptionApproved = "Approved"
	RedemptionRejected = "Rejected"
)

// Redemption is a salesman's claim against the reward catalog.
type Redemption struct {
	ID        string  `json:"_id"`
	User      NameRef `json:"userId"`
	CreatedAt string  `json:"createdAt"`
	Status    string  `json:"status"`
}

// RedemptionListResponse wraps GET /api/redeem.
type RedemptionListResponse struct {
	RedemptionRequests []Redemption `json:"redemptionRequests"`
}
