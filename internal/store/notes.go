package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/mvandyk/stickypad/internal/model"
)

// ErrPasswordRequired is returned when the notes file holds an encrypted
// container and no password was supplied.
var ErrPasswordRequired = errors.New("notes file is encrypted and no password is available")

// LoadNotes reads the note snapshots from path. A missing file is an
// empty note set, not an error. password is consulted only when the file
// holds an encrypted container. Stored geometry is floored to the note
// minimums so a hand-edited file cannot produce an unusable window.
func LoadNotes(path, password string) ([]model.Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "read notes file")
	}

	if IsEncrypted(raw) {
		if password == "" {
			return nil, ErrPasswordRequired
		}
		raw, err = Decrypt(raw, password)
		if err != nil {
			return nil, err
		}
	}

	var snaps []model.Snapshot
	if err := json.Unmarshal(raw, &snaps); err != nil {
		return nil, errors.Wrap(err, "parse notes file")
	}
	for i := range snaps {
		snaps[i].Geometry = snaps[i].Geometry.FloorSize(model.MinNoteWidth, model.MinNoteHeight)
	}
	return snaps, nil
}

// SaveNotes writes the snapshots to path, creating missing parent
// directories. With a non-empty password the payload is sealed into the
// encrypted container format; otherwise it is written as plain JSON.
func SaveNotes(path string, snaps []model.Snapshot, password string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "create config dir")
	}

	if snaps == nil {
		snaps = []model.Snapshot{}
	}
	data, err := json.MarshalIndent(snaps, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal notes")
	}

	if password != "" {
		data, err = Encrypt(data, password)
		if err != nil {
			return err
		}
	}
	return errors.Wrap(os.WriteFile(path, data, 0644), "write notes file")
}
