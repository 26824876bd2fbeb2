package model

// Reward maps an item category to the points earned per unit recycled
type Reward struct {
	Item   string `json:"item" bson:"item"`
	Points int64  `json:"points" bson:"points"`
}

// DefaultRewards is the reference table seeded at startup
var DefaultRewards = []Reward{
	{Item: "laptop", Points: 1000},
	{Item: "smartphone", Points: 500},
	{Item: "television", Points: 1500},
}

// EstimateItem is one line of an estimate. Names are matched exactly against the reward table.
type EstimateItem struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity" binding:"gte=0"`
}

// EstimateRequest is the payload of POST /estimate
type EstimateRequest struct {
	Items []EstimateItem `json:"items" binding:"required,dive"`
}
