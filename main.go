package main

import "minio-storage/cmd"

func main() {
	cmd.Execute()
}
