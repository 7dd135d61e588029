package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/uuid"

	"github.com/smarthome-protocol/smarthome-go/pkg/fulfillment"
	"github.com/smarthome-protocol/smarthome-go/pkg/service"
	"github.com/smarthome-protocol/smarthome-go/pkg/traits"
)

// onliner lets the console force a simulated device on or off the
// network.
type onliner interface {
	SetOnline(online bool)
}

type repl struct {
	svc  *service.Service
	sims map[string]onliner
	rl   *readline.Instance
}

func newREPL(svc *service.Service, sims map[string]onliner) (*repl, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "fulfillment> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &repl{svc: svc, sims: sims, rl: rl}, nil
}

func (r *repl) run() {
	defer r.rl.Close()

	r.printHelp()

	for {
		line, err := r.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(r.rl.Stdout(), "Exiting...")
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			r.printHelp()

		case "devices", "d":
			r.cmdDevices()

		case "sync", "s":
			r.cmdSync()

		case "query", "q":
			r.cmdQuery(args)

		case "on":
			r.execute(args, 1, func(id string) fulfillment.Command {
				return &fulfillment.OnOffCommand{On: true}
			})

		case "off":
			r.execute(args, 1, func(id string) fulfillment.Command {
				return &fulfillment.OnOffCommand{On: false}
			})

		case "brightness", "b":
			r.cmdBrightness(args)

		case "lock":
			r.execute(args, 1, func(id string) fulfillment.Command {
				return &fulfillment.LockUnlockCommand{Lock: true}
			})

		case "unlock":
			r.execute(args, 1, func(id string) fulfillment.Command {
				return &fulfillment.LockUnlockCommand{Lock: false}
			})

		case "setpoint":
			r.cmdSetpoint(args)

		case "mode":
			r.cmdMode(args)

		case "online":
			r.cmdOnline(args, true)

		case "offline":
			r.cmdOnline(args, false)

		case "raw":
			r.cmdRaw(input)

		case "quit", "exit":
			fmt.Fprintln(r.rl.Stdout(), "Exiting...")
			return

		default:
			fmt.Fprintf(r.rl.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (r *repl) printHelp() {
	fmt.Fprintln(r.rl.Stdout(), `
Fulfillment Console Commands:
  Intents:
    sync                 - Send a SYNC request
    query [id ...]       - Send a QUERY request (default: all devices)
    raw <request-json>   - Send a raw fulfillment request

  Commands:
    on|off <id>          - Turn a device on or off
    brightness <id> <pct> - Set brightness (0-100)
    lock|unlock <id>     - Lock or unlock
    setpoint <id> <c>    - Set thermostat setpoint in Celsius
    mode <id> <mode>     - Set thermostat mode (off, heat, cool, heatcool)

  Simulation:
    devices              - List registered devices
    online|offline <id>  - Force a device on or off the network

  General:
    help                 - Show this help
    quit                 - Exit`)
}

func (r *repl) cmdDevices() {
	for _, d := range r.svc.Devices() {
		traitList := d.Traits()
		names := make([]string, len(traitList))
		for i, tr := range traitList {
			names[i] = strings.TrimPrefix(string(tr), "action.devices.traits.")
		}
		fmt.Fprintf(r.rl.Stdout(), "  %-14s %-40s [%s]\n",
			d.ID(),
			string(d.Type()),
			strings.Join(names, ", "))
	}
}

func (r *repl) cmdSync() {
	r.send(&fulfillment.Request{
		RequestID: uuid.NewString(),
		Inputs:    []fulfillment.Input{{Intent: fulfillment.IntentSync}},
	})
}

func (r *repl) cmdQuery(args []string) {
	ids := args
	if len(ids) == 0 {
		for _, d := range r.svc.Devices() {
			ids = append(ids, d.ID())
		}
	}

	refs := make([]fulfillment.DeviceRef, len(ids))
	for i, id := range ids {
		refs[i] = fulfillment.DeviceRef{ID: id}
	}

	r.send(&fulfillment.Request{
		RequestID: uuid.NewString(),
		Inputs: []fulfillment.Input{{
			Intent: fulfillment.IntentQuery,
			Query:  &fulfillment.QueryRequest{Devices: refs},
		}},
	})
}

func (r *repl) cmdBrightness(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(r.rl.Stdout(), "Usage: brightness <id> <pct>")
		return
	}
	pct, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(r.rl.Stdout(), "Invalid percentage: %v\n", err)
		return
	}
	r.execute(args, 2, func(id string) fulfillment.Command {
		return &fulfillment.BrightnessAbsoluteCommand{Brightness: pct}
	})
}

func (r *repl) cmdSetpoint(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(r.rl.Stdout(), "Usage: setpoint <id> <celsius>")
		return
	}
	celsius, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		fmt.Fprintf(r.rl.Stdout(), "Invalid temperature: %v\n", err)
		return
	}
	r.execute(args, 2, func(id string) fulfillment.Command {
		return &fulfillment.ThermostatTemperatureSetpointCommand{
			ThermostatTemperatureSetpoint: celsius,
		}
	})
}

func (r *repl) cmdMode(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(r.rl.Stdout(), "Usage: mode <id> <mode>")
		return
	}
	r.execute(args, 2, func(id string) fulfillment.Command {
		return &fulfillment.ThermostatSetModeCommand{
			ThermostatMode: traits.ThermostatMode(args[1]),
		}
	})
}

// execute sends an EXECUTE request with one command against one
// device. minArgs guards the usage message.
func (r *repl) execute(args []string, minArgs int, build func(id string) fulfillment.Command) {
	if len(args) < minArgs {
		fmt.Fprintln(r.rl.Stdout(), "Usage: <command> <id> [args]")
		return
	}
	id := args[0]

	r.send(&fulfillment.Request{
		RequestID: uuid.NewString(),
		Inputs: []fulfillment.Input{{
			Intent: fulfillment.IntentExecute,
			Execute: &fulfillment.ExecuteRequest{
				Commands: []fulfillment.CommandGroup{{
					Devices:   []fulfillment.DeviceRef{{ID: id}},
					Execution: []fulfillment.Execution{{Command: build(id)}},
				}},
			},
		}},
	})
}

func (r *repl) cmdOnline(args []string, online bool) {
	if len(args) < 1 {
		fmt.Fprintln(r.rl.Stdout(), "Usage: online|offline <id>")
		return
	}
	sim, ok := r.sims[args[0]]
	if !ok {
		fmt.Fprintf(r.rl.Stdout(), "Unknown device: %s\n", args[0])
		return
	}
	sim.SetOnline(online)
	state := "online"
	if !online {
		state = "offline"
	}
	fmt.Fprintf(r.rl.Stdout(), "%s is now %s\n", args[0], state)
}

func (r *repl) cmdRaw(input string) {
	payload := strings.TrimSpace(strings.TrimPrefix(input, "raw"))
	if payload == "" {
		fmt.Fprintln(r.rl.Stdout(), "Usage: raw <request-json>")
		return
	}

	out, err := r.svc.HandleJSON([]byte(payload))
	if err != nil {
		fmt.Fprintf(r.rl.Stdout(), "Error: %v\n", err)
		return
	}
	r.printJSON(out)
}

// send submits the request and pretty-prints the response.
func (r *repl) send(req *fulfillment.Request) {
	resp, err := r.svc.HandleRequest(req)
	if err != nil {
		fmt.Fprintf(r.rl.Stdout(), "Error: %v\n", err)
		return
	}

	out, err := fulfillment.EncodeResponse(resp)
	if err != nil {
		fmt.Fprintf(r.rl.Stdout(), "Error: %v\n", err)
		return
	}
	r.printJSON(out)
}

func (r *repl) printJSON(data []byte) {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, data, "", "  "); err != nil {
		fmt.Fprintln(r.rl.Stdout(), string(data))
		return
	}
	fmt.Fprintln(r.rl.Stdout(), pretty.String())
}
