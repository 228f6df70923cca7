package store

import (
	"fmt"
	"strings"

	"netcollector/core/store/models"
)

// CommentsSeparator divides the generated disk block of VM comments from the
// free text written by people.
const CommentsSeparator = "------ END OF DISK INFO ------"

// PreservedNotes returns the free text of existing comments: everything after
// the first separator, or the whole text when there is none.
func PreservedNotes(comments string) string {
	_, after, found := strings.Cut(comments, CommentsSeparator)
	if !found {
		return comments
	}
	return strings.TrimPrefix(after, "\n")
}

// ComposeComments renders the disk block, the separator and the notes.
func ComposeComments(disks []models.Disk, notes string) string {
	var b strings.Builder
	for _, d := range disks {
		fmt.Fprintf(&b, "Disk %s: name=%s size=%dGB path=%s\n", d.Index, d.Name, int64(d.SizeGB()), d.Path)
	}
	b.WriteString(CommentsSeparator)
	b.WriteString("\n")
	b.WriteString(notes)
	return b.String()
}
