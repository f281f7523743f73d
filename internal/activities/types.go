package activities

import (
	"github.com/google/uuid"

	"github.com/Yackxz2004/Estadia-Banquetes/pkg/db/models"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/enums"
)

// Settleable is the capability the lifecycle engine needs from an activity
// record: identity, kind, display name, and current status. Events and
// tastings both satisfy it, which is what lets one engine drive both
// lifecycles.
type Settleable interface {
	ActivityID() uuid.UUID
	ActivityStatus() enums.ActivityStatus
	ActivityKind() enums.ActivityKind
	ActivityName() string
}

// Record constrains the engine to the concrete activity shapes. Both members
// implement Settleable on value receivers so the engine can read lifecycle
// fields without reflection.
type Record interface {
	models.Event | models.Tasting

	Settleable
}
