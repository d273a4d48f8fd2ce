package models

// Image describes an uploaded object. PublicID is the storage key and is
// what clients send back to delete it.
type Image struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}
