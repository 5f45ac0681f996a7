package models

// Trạng thái duyệt dùng chung cho shop và offer.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)
