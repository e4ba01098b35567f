// Package nbt implements the NBT (Named Binary Tag) format: the in-memory
// tag tree, the binary decoder, and the binary encoder.
//
// NBT is the hierarchical binary format used by Minecraft-style game saves.
// A file is a single root tag (conventionally a TAG_Compound) whose payload
// nests further named tags. All multi-byte values are big-endian; names and
// string payloads are length-prefixed modified UTF-8.
//
// Decode and Encode operate on fully materialized byte buffers. Stream
// compression (gzip/zlib) is a collaborator concern, see the codec and
// nbtfile packages.
//
//	root, err := nbt.Decode(data)
//	if err != nil {
//	    return err
//	}
//	out, err := nbt.Encode(root)
//
// Traversal and filtering live in the walker subpackage.
package nbt
