package store

import (
	"encoding/json"

	"agencybuilder/coach/config"
	"agencybuilder/coach/types"
)

// DocumentKey namespaces one user's document so documents never collide
// across identifiers.
func DocumentKey(email string) string {
	return config.DataKeyPrefix + email
}

// LoadUserDocument reads a user's document from the store. A missing key
// returns nil. A corrupt document is logged and treated the same as a
// missing one, which falls through to first-time initialization.
func LoadUserDocument(kv KV, email string) (*types.UserDocument, error) {
	raw, ok, err := kv.Get(DocumentKey(email))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var doc types.UserDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		config.Logger.Warn("Discarding unreadable user document for ", email, ": ", err)
		return nil, nil
	}
	return &doc, nil
}

// SaveUserDocument overwrites the user's document with the given state.
func SaveUserDocument(kv KV, email string, doc *types.UserDocument) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return kv.Set(DocumentKey(email), raw)
}
