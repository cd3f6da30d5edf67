package campaign

const (
	RelationSelf   = "SELF"
	RelationLeader = "LEADER"
	RelationPeer   = "PEER"
	RelationMember = "MEMBER"

	AssignmentStatusPending           = "PENDING"
	AssignmentStatusInProgress        = "IN_PROGRESS"
	AssignmentStatusSubmitted         = "SUBMITTED"
	AssignmentStatusReviewOpen        = "REVIEW_OPEN"
	AssignmentStatusResubmitRequested = "RESUBMIT_REQUESTED"
)
