// Package datadir gives read-only access to the files in a data directory.
//
// Every name is resolved relative to the base directory and rejected if it
// would escape it, so user-supplied file names such as "../../etc/passwd"
// fail with ErrInvalidPath instead of being opened.
//
//	dir, err := datadir.New("Data")
//	if err != nil {
//		return err
//	}
//	f, err := dir.Open("ctabus.csv")
//	if err != nil {
//		return err
//	}
//	defer f.Close()
//
// Absolute names are accepted only when they point inside the base directory.
package datadir
