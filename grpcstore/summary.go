package grpcstore

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"xdao.co/vbmeta/descriptor"
)

// summarize projects a parsed descriptor onto plain JSON-compatible values
// for the Inspect reply.
//
// 64-bit fields are rendered as decimal strings: Struct numbers are IEEE
// doubles and would silently lose precision above 2^53. Byte fields are
// hex-encoded.
func summarize(d descriptor.Descriptor) map[string]interface{} {
	switch d := d.(type) {
	case *descriptor.Property:
		return map[string]interface{}{
			"kind":  "property",
			"key":   d.Key,
			"value": hex.EncodeToString(d.Value),
		}
	case *descriptor.Hashtree:
		return map[string]interface{}{
			"kind":              "hashtree",
			"partition":         d.PartitionName,
			"dm_verity_version": float64(d.DMVerityVersion),
			"image_size":        u64(d.ImageSize),
			"tree_offset":       u64(d.TreeOffset),
			"tree_size":         u64(d.TreeSize),
			"data_block_size":   float64(d.DataBlockSize),
			"hash_block_size":   float64(d.HashBlockSize),
			"fec_num_roots":     float64(d.FECNumRoots),
			"fec_offset":        u64(d.FECOffset),
			"fec_size":          u64(d.FECSize),
			"hash_algorithm":    d.HashAlgorithm,
			"flags":             float64(d.Flags),
			"salt":              hex.EncodeToString(d.Salt),
			"root_digest":       hex.EncodeToString(d.RootDigest),
		}
	case *descriptor.Hash:
		return map[string]interface{}{
			"kind":           "hash",
			"partition":      d.PartitionName,
			"image_size":     u64(d.ImageSize),
			"hash_algorithm": d.HashAlgorithm,
			"flags":          float64(d.Flags),
			"salt":           hex.EncodeToString(d.Salt),
			"digest":         hex.EncodeToString(d.Digest),
		}
	case *descriptor.KernelCmdline:
		return map[string]interface{}{
			"kind":    "kernel_cmdline",
			"flags":   float64(d.Flags),
			"cmdline": d.Cmdline,
		}
	case *descriptor.ChainPartition:
		return map[string]interface{}{
			"kind":                    "chain_partition",
			"partition":               d.PartitionName,
			"rollback_index_location": float64(d.RollbackIndexLocation),
			"flags":                   float64(d.Flags),
			"public_key":              hex.EncodeToString(d.PublicKey),
		}
	case *descriptor.Unknown:
		return map[string]interface{}{
			"kind":     "unknown",
			"tag":      u64(d.RawTag),
			"contents": hex.EncodeToString(d.Contents),
		}
	default:
		return map[string]interface{}{
			"kind": fmt.Sprintf("unhandled(%T)", d),
		}
	}
}

func u64(v uint64) string { return strconv.FormatUint(v, 10) }
