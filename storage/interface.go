package storage

import (
	"errors"

	"github.com/SamuelLeutner/student-risk-dashboard/dashboard"
)

var ErrPageNotFound = errors.New("page view not found")

// PageStore keeps live dashboard page views between HTTP requests. A page
// view lives until it is deleted or expires; nothing is written to disk.
type PageStore interface {
	Save(page *dashboard.Page) (string, error)
	Get(id string) (*dashboard.Page, error)
	Delete(id string) error
}
