package domain

import "errors"

var ErrProfileNotFound = errors.New("profile not found")

// UserProfile carries the optional, user-editable part of an account.
// Skills are stored as a comma-separated string.
type UserProfile struct {
	ID         string `json:"id" bson:"_id,omitempty"`
	UserEmail  string `json:"user_email" bson:"user_email"`
	Headline   string `json:"headline,omitempty" bson:"headline,omitempty"`
	Bio        string `json:"bio,omitempty" bson:"bio,omitempty"`
	Location   string `json:"location,omitempty" bson:"location,omitempty"`
	Skills     string `json:"skills,omitempty" bson:"skills,omitempty"`
	ResumeFile string `json:"-" bson:"resume_file,omitempty"`
}
