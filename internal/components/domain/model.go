package domain

import "time"

// Descriptor is one building block offered by the editor. Key is the
// stable identity used for seeding.
type Descriptor struct {
	ID            string            `json:"id" yaml:"-"`
	Key           string            `json:"key" yaml:"key"`
	ComponentName string            `json:"componentName" yaml:"componentName"`
	ComponentType string            `json:"componentType" yaml:"componentType"`
	Description   string            `json:"description" yaml:"description"`
	PropsSchema   map[string]string `json:"propsSchema" yaml:"propsSchema"`
	CreatedAt     time.Time         `json:"createdAt" yaml:"-"`
	UpdatedAt     time.Time         `json:"updatedAt" yaml:"-"`
}
