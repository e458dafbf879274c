package models

import (
	"strings"

	json "github.com/goccy/go-json"
)

// DefaultImageResID is the bundled launcher icon used when a restaurant has no photo.
const DefaultImageResID int64 = 1

// Restaurant represents a tracked restaurant.
type Restaurant struct {
	// ID is the storage-assigned row identifier. Zero means not yet persisted.
	ID int64 `json:"id"`

	// Name is the display name of the restaurant.
	Name string `json:"name"`

	// Description is a free-text description shown under the name.
	Description string `json:"description"`

	// ImageResID is a bundled image resource identifier.
	ImageResID int64 `json:"image_res_id"`

	// ImagePath is the path of a captured photo. When set it takes precedence over ImageResID.
	ImagePath string `json:"image_path,omitempty"`

	// Address is the optional street address used for geocoding and maps.
	Address string `json:"address,omitempty"`
}

// ImageRef identifies the image to show for a restaurant: either a file path or a resource ID.
type ImageRef struct {
	Path       string
	ResourceID int64
}

// IsFile reports whether the reference points at a captured photo.
func (r ImageRef) IsFile() bool {
	return r.Path != ""
}

// Image resolves which image the restaurant should display.
func (r Restaurant) Image() ImageRef {
	if r.ImagePath != "" {
		return ImageRef{Path: r.ImagePath}
	}
	resID := r.ImageResID
	if resID == 0 {
		resID = DefaultImageResID
	}
	return ImageRef{ResourceID: resID}
}

// HasAddress reports whether the restaurant has a usable address.
func (r Restaurant) HasAddress() bool {
	return strings.TrimSpace(r.Address) != ""
}

// WithID returns a copy of the restaurant carrying a new identifier.
// Used when a deleted restaurant is re-inserted.
func (r Restaurant) WithID(id int64) Restaurant {
	r.ID = id
	return r
}

// MarshalBinary serializes the restaurant for cross-screen transfer.
func (r Restaurant) MarshalBinary() ([]byte, error) {
	return json.Marshal(r)
}

// UnmarshalBinary restores a restaurant serialized by MarshalBinary.
func (r *Restaurant) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, r)
}
