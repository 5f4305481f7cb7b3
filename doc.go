// Package phystech reads PTB-style measurement files: hierarchical
// containers whose leaf datasets are channels of position-tagged samples.
// It locates channels by short name, reads their records, and merges
// independently sampled channels into one rectangular table aligned on a
// shared position counter.
//
// A File wraps a container.Container handle for its whole lifetime:
//
//	f, err := phystech.Open("00149.h5")
//	if err != nil {
//		return err
//	}
//	defer f.Close()
//
//	fmt.Println(f.Describe())
//	frame, err := f.Frame("eVEnerg:io1200000cff", "A2980:23303chan1")
//
// Channel names are substrings of full container paths; the first match in
// depth-first order wins. Table height is fixed at open time by the master
// position channel's largest counter value.
//
// A File is not safe for concurrent use; callers serialize access to a
// single handle.
package phystech
