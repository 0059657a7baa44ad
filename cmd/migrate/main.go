package main

import (
	"log"
	"os"

	"frontdesk/config"
	"frontdesk/helper"
)

const (
	argLength       = 2
	argTargetLength = 3
)

func main() {
	if len(os.Args) < argLength {
		log.Fatal("Migration direction (up/down) is required")
	}

	target := helper.TargetLocal
	if len(os.Args) >= argTargetLength {
		target = os.Args[2]
	}

	if target != helper.TargetLocal && target != helper.TargetRemote {
		log.Fatal("Invalid target. Use 'local' or 'remote'")
	}

	cfg := config.Get()

	switch os.Args[1] {
	case "up":
		if err := helper.Up(cfg, target); err != nil {
			log.Fatal(err)
		}
	case "down":
		if err := helper.Down(cfg, target); err != nil {
			log.Fatal(err)
		}
	case "drop":
		if err := helper.Drop(cfg, target); err != nil {
			log.Fatal(err)
		}
	case "step-up":
		if err := helper.StepUp(cfg, target); err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatal("Invalid direction. Use 'up', 'down', 'drop' or 'step-up'")
	}
}
