// Package scene reads tree descriptions and reads and writes layout documents.
//
// It sits at the serialization boundary around [flex]:
//
//   - Tree descriptions ([flex.NodeSpec]) come from JSON, TOML or HCL files
//   - [Layout] documents carry the computed boxes out to files, the HTTP API
//     and cache backends (JSON and BSON tags)
//
// # Tree Descriptions
//
// JSON and TOML map directly onto [flex.NodeSpec] field names:
//
//	{
//	  "width": 800, "height": 600, "gap": 8, "padding": 16,
//	  "children": [
//	    {"id": "sidebar", "width": 200},
//	    {"id": "main", "grow": 1, "direction": "column",
//	     "children": [{"id": "header", "height": 60}, {"id": "body", "grow": 1}]}
//	  ]
//	}
//
// HCL uses nested node blocks:
//
//	width  = 800
//	height = 600
//	gap    = 8
//
//	node {
//	  id    = "sidebar"
//	  width = 200
//	}
//	node {
//	  id        = "main"
//	  grow      = 1
//	  direction = "column"
//	  padding   = { top = 4, left = 4 }
//
//	  node {
//	    id     = "header"
//	    height = 60
//	  }
//	}
//
// [Validate] applies the document rules the solver itself does not enforce:
// the root must have a width and a height, explicit ids must be unique and
// keywords must be known.
//
// # Layout Documents
//
// [NewLayout] turns the pre-order entries of a computed [flex.Tree] into a
// [Layout]; [MarshalLayout], [UnmarshalLayout], [WriteLayoutFile] and
// [ReadLayoutFile] move it through JSON.
package scene
