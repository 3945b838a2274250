// Package exdir implements the Exdir directory hierarchy.
//
// An Exdir file is a directory tree. Every object is a directory holding an
// exdir.yaml that names its type:
//
//	exdir:
//	  version: 1
//	  type: file|group|dataset|raw
//
// Any object may carry free-form attributes in attributes.yaml. A dataset
// stores its array in data.npy. Raw directories hold arbitrary files and may
// omit exdir.yaml entirely.
//
//	experiment/            exdir.yaml (file)
//	├── session1/          exdir.yaml (group), attributes.yaml
//	│   ├── spikes/        exdir.yaml (dataset), data.npy
//	│   │   └── notes/     raw
//	│   └── video/         exdir.yaml (raw), frame0.png
//	└── ...
//
// Objects are plain handles to directories. They are not safe for concurrent
// use and do not lock the tree against other writers.
package exdir
