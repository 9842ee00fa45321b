// Command fanmount inspects the fastener catalog and previews fan-mount
// silhouettes.
package main

func main() {
	Execute()
}
