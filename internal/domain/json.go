package domain

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The free-form entities (users, applications, reservations) round-trip
// their extra fields through JSON by hand: known fields map to struct
// members, everything else lands in the inline Extra map so the documents
// the clients wrote keep their shape.

// MarshalJSON flattens the user's free-form profile fields alongside the
// known ones.
func (u User) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(u.Extra)+3)
	for k, v := range u.Extra {
		out[k] = v
	}
	if !u.ID.IsZero() {
		out["_id"] = u.ID.Hex()
	}
	out["email"] = u.Email
	if u.Role != "" {
		out["role"] = u.Role
	}
	return json.Marshal(out)
}

// UnmarshalJSON splits a free-form user document into known fields and the
// Extra map.
func (u *User) UnmarshalJSON(data []byte) error {
	raw := map[string]interface{}{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v, ok := raw["_id"].(string); ok {
		if oid, err := primitive.ObjectIDFromHex(v); err == nil {
			u.ID = oid
		}
	}
	if v, ok := raw["email"].(string); ok {
		u.Email = v
	}
	if v, ok := raw["role"].(string); ok {
		u.Role = v
	}
	delete(raw, "_id")
	delete(raw, "email")
	delete(raw, "role")
	u.Extra = raw
	return nil
}

// MarshalJSON flattens the application payload alongside the reference fields.
func (a JobApplication) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(a.Extra)+3)
	for k, v := range a.Extra {
		out[k] = v
	}
	if !a.ID.IsZero() {
		out["_id"] = a.ID.Hex()
	}
	out["jobId"] = a.JobID.Hex()
	out["applicantEmail"] = a.ApplicantEmail
	return json.Marshal(out)
}

// UnmarshalJSON splits an application document into reference fields and
// the free-form payload. A malformed jobId leaves JobID zero; Validate
// reports it as missing.
func (a *JobApplication) UnmarshalJSON(data []byte) error {
	raw := map[string]interface{}{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v, ok := raw["_id"].(string); ok {
		if oid, err := primitive.ObjectIDFromHex(v); err == nil {
			a.ID = oid
		}
	}
	if v, ok := raw["jobId"].(string); ok {
		if oid, err := primitive.ObjectIDFromHex(v); err == nil {
			a.JobID = oid
		}
	}
	if v, ok := raw["applicantEmail"].(string); ok {
		a.ApplicantEmail = v
	}
	delete(raw, "_id")
	delete(raw, "jobId")
	delete(raw, "applicantEmail")
	a.Extra = raw
	return nil
}

// MarshalJSON flattens the reservation metadata alongside the reference fields.
func (r Reservation) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(r.Extra)+3)
	for k, v := range r.Extra {
		out[k] = v
	}
	if !r.ID.IsZero() {
		out["_id"] = r.ID.Hex()
	}
	out["testId"] = r.TestID.Hex()
	out["userEmail"] = r.UserEmail
	return json.Marshal(out)
}

// UnmarshalJSON splits a reservation document into reference fields and
// the free-form metadata.
func (r *Reservation) UnmarshalJSON(data []byte) error {
	raw := map[string]interface{}{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v, ok := raw["_id"].(string); ok {
		if oid, err := primitive.ObjectIDFromHex(v); err == nil {
			r.ID = oid
		}
	}
	if v, ok := raw["testId"].(string); ok {
		if oid, err := primitive.ObjectIDFromHex(v); err == nil {
			r.TestID = oid
		}
	}
	if v, ok := raw["userEmail"].(string); ok {
		r.UserEmail = v
	}
	delete(raw, "_id")
	delete(raw, "testId")
	delete(raw, "userEmail")
	r.Extra = raw
	return nil
}
