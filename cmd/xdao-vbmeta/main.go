package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ipfs/go-cid"

	"xdao.co/vbmeta/cidutil"
	"xdao.co/vbmeta/descriptor"
	"xdao.co/vbmeta/storage/localfs"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "inspect":
		return cmdInspect(args[1:], out, errOut)
	case "cid":
		return cmdCID(args[1:], out, errOut)
	case "put":
		return cmdPut(args[1:], out, errOut)
	case "get":
		return cmdGet(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "xdao-vbmeta: vbmeta descriptor inspection CLI")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  xdao-vbmeta inspect <file>")
	fmt.Fprintln(w, "  xdao-vbmeta cid <file>")
	fmt.Fprintln(w, "  xdao-vbmeta put --store <dir> <file>")
	fmt.Fprintln(w, "  xdao-vbmeta get --store <dir> <cid>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - <file> holds a contiguous descriptor stream (a vbmeta descriptors block)")
	fmt.Fprintln(w, "  - put/get archive blobs in a CID-keyed local store")
}

func cmdInspect(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "inspect: expected exactly one file")
		return 2
	}
	blob, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	ds, err := descriptor.Descriptors(blob)
	if err != nil {
		fmt.Fprintf(errOut, "malformed descriptor stream: %v\n", err)
		return 1
	}
	for i, d := range ds {
		printDescriptor(out, i, d)
	}
	return 0
}

func printDescriptor(out io.Writer, i int, d descriptor.Descriptor) {
	switch d := d.(type) {
	case *descriptor.Property:
		fmt.Fprintf(out, "%d: property %s = %q\n", i, d.Key, d.Value)
	case *descriptor.Hashtree:
		fmt.Fprintf(out, "%d: hashtree partition=%s alg=%s version=%d image_size=%d\n",
			i, d.PartitionName, d.HashAlgorithm, d.DMVerityVersion, d.ImageSize)
		fmt.Fprintf(out, "   tree_offset=%d tree_size=%d data_block=%d hash_block=%d flags=%#x\n",
			d.TreeOffset, d.TreeSize, d.DataBlockSize, d.HashBlockSize, uint32(d.Flags))
		fmt.Fprintf(out, "   fec_roots=%d fec_offset=%d fec_size=%d\n", d.FECNumRoots, d.FECOffset, d.FECSize)
		fmt.Fprintf(out, "   salt=%s\n", hex.EncodeToString(d.Salt))
		fmt.Fprintf(out, "   root_digest=%s\n", hex.EncodeToString(d.RootDigest))
	case *descriptor.Hash:
		fmt.Fprintf(out, "%d: hash partition=%s alg=%s image_size=%d flags=%#x\n",
			i, d.PartitionName, d.HashAlgorithm, d.ImageSize, uint32(d.Flags))
		fmt.Fprintf(out, "   salt=%s\n", hex.EncodeToString(d.Salt))
		fmt.Fprintf(out, "   digest=%s\n", hex.EncodeToString(d.Digest))
	case *descriptor.KernelCmdline:
		fmt.Fprintf(out, "%d: kernel_cmdline flags=%#x cmdline=%q\n", i, uint32(d.Flags), d.Cmdline)
	case *descriptor.ChainPartition:
		fmt.Fprintf(out, "%d: chain_partition partition=%s rollback_index_location=%d flags=%#x key_bytes=%d\n",
			i, d.PartitionName, d.RollbackIndexLocation, uint32(d.Flags), len(d.PublicKey))
	case *descriptor.Unknown:
		fmt.Fprintf(out, "%d: unknown tag=%#x (%d bytes)\n", i, d.RawTag, len(d.Contents))
	}
}

func cmdCID(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "cid: expected exactly one file")
		return 2
	}
	blob, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	id, err := cidutil.Sum(blob)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	fmt.Fprintln(out, id.String())
	return 0
}

func cmdPut(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("put", flag.ContinueOnError)
	fs.SetOutput(errOut)
	storeDir := fs.String("store", "", "store root directory")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *storeDir == "" || fs.NArg() != 1 {
		fmt.Fprintln(errOut, "put: need --store <dir> and exactly one file")
		return 2
	}
	blob, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	store, err := localfs.New(*storeDir)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	id, err := store.Put(blob)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	fmt.Fprintln(out, id.String())
	return 0
}

func cmdGet(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	fs.SetOutput(errOut)
	storeDir := fs.String("store", "", "store root directory")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *storeDir == "" || fs.NArg() != 1 {
		fmt.Fprintln(errOut, "get: need --store <dir> and exactly one cid")
		return 2
	}
	id, err := cid.Decode(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	store, err := localfs.New(*storeDir)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	blob, err := store.Get(id)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	if _, err := out.Write(blob); err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	return 0
}
