package details

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"frontdesk_backend/internals/configs"
	"frontdesk_backend/internals/events"
)

// Deps is what the route builders need to construct repositories and
// services.
type Deps struct {
	DB     *gorm.DB
	Config *configs.Config
	Log    *zap.Logger
	Events events.Publisher
}
