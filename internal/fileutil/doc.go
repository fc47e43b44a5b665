// Package fileutil lists directory entries for a rename batch.
//
// Listing is deliberately flat: only the entries directly inside the
// directory are considered and subdirectories are never descended into.
// A subdirectory whose name ends with the source extension is returned as a
// match like any regular file unless ListOptions.FilesOnly is set.
//
// Matching compares the lower-cased entry name against "." + extension, where
// the extension is expected to be lower-cased already:
//
//	result, err := fileutil.ListEntries("/media/card", fileutil.ListOptions{
//	    Extension: "chk",
//	})
//	if err != nil {
//	    return err
//	}
//	for _, entry := range result.Matches {
//	    fmt.Println(entry.Name)
//	}
//
// Matches are sorted byte-wise so repeated runs over the same directory
// contents process entries in the same order.
package fileutil
