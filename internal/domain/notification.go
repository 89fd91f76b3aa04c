package domain

// ChangeClass is the unit of notification aggregation.
type ChangeClass string

const (
	ChangeCreated      ChangeClass = "created"
	ChangeUpdated      ChangeClass = "updated"
	ChangeDeleted      ChangeClass = "deleted"
	ChangeOwnerRemoved ChangeClass = "owner_removed"
)

func (c ChangeClass) String() string { return string(c) }

// ItemChangeClasses lists the per-item classes in announcement order.
var ItemChangeClasses = []ChangeClass{ChangeCreated, ChangeUpdated, ChangeDeleted}

// ChangeSet holds the natural keys affected by one reconciliation.
// The four slices are disjoint.
type ChangeSet struct {
	Created   []string
	Updated   []string
	Deleted   []string
	Unchanged []string
}

// Keys returns the keys for an item change class.
func (c ChangeSet) Keys(class ChangeClass) []string {
	switch class {
	case ChangeCreated:
		return c.Created
	case ChangeUpdated:
		return c.Updated
	case ChangeDeleted:
		return c.Deleted
	}
	return nil
}

// Empty reports whether nothing was created, updated or deleted.
func (c ChangeSet) Empty() bool {
	return len(c.Created) == 0 && len(c.Updated) == 0 && len(c.Deleted) == 0
}

// Notification is the payload accepted by the notification service.
type Notification struct {
	UserID            int64  `json:"userId"`
	RelatedEntityID   int64  `json:"relatedEntityId"`
	RelatedEntityType string `json:"relatedEntityType"`
	Title             string `json:"title"`
	Message           string `json:"message"`
	Type              string `json:"type"`
	CreatedBy         int64  `json:"createdBy"`
}

// DeliveryStats counts delivery attempts for one change class.
type DeliveryStats struct {
	Attempted int `json:"attempted"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// NotifyReport summarises one announcement. It is informational only.
type NotifyReport struct {
	Stakeholders int                           `json:"stakeholders"`
	Classes      map[ChangeClass]DeliveryStats `json:"classes,omitempty"`
	// ResolveErr is set when stakeholders could not be resolved.
	ResolveErr error `json:"-"`
}

// Totals sums the stats over all classes.
func (r NotifyReport) Totals() DeliveryStats {
	var t DeliveryStats
	for _, s := range r.Classes {
		t.Attempted += s.Attempted
		t.Succeeded += s.Succeeded
		t.Failed += s.Failed
	}
	return t
}
