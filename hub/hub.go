package hub

import (
	"io"

	"canduo/core"
	"canduo/protocol"
)

// Node is the hub's main-loop state: two debounced buttons mapped to
// start/stop commands, a receive queue filled by the CAN driver and the
// telemetry bridge. All fields are owned by the main loop; only the
// queue is shared with interrupt context.
type Node struct {
	queue  *core.RxQueue
	can    core.CANDriver
	bridge *Bridge

	startPin core.InputPin
	stopPin  core.InputPin
	startBtn *Button
	stopBtn  *Button
}

// NewNode wires a hub node. queue is shared with the CAN driver's
// reception path. startPin maps to the start command, stopPin to stop;
// console receives the bridge's text output.
func NewNode(cfg core.Config, queue *core.RxQueue, can core.CANDriver, startPin, stopPin core.InputPin, console io.Writer) *Node {
	if queue == nil {
		queue = core.NewRxQueue(cfg.QueueCapacity)
	}
	return &Node{
		queue:    queue,
		can:      can,
		bridge:   NewBridge(console, cfg.FreshnessWindow),
		startPin: startPin,
		stopPin:  stopPin,
		startBtn: NewButton(cfg.DebounceTicks),
		stopBtn:  NewButton(cfg.DebounceTicks),
	}
}

// Queue returns the node's receive queue.
func (n *Node) Queue() *core.RxQueue { return n.queue }

// Bridge exposes the telemetry bridge, mainly for freshness queries.
func (n *Node) Bridge() *Bridge { return n.bridge }

// Step runs one main-loop iteration: poll both buttons, transmit
// commands for confirmed presses, then drain received frames into the
// bridge. Releases are observable through Button.Pressed but cause no
// bus traffic. The returned error reports transmit failures only.
func (n *Node) Step() error {
	var firstErr error
	if n.startBtn.Update(n.startPin.Read()) == EventPressed {
		if err := n.send(protocol.CmdStart); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if n.stopBtn.Update(n.stopPin.Read()) == EventPressed {
		if err := n.send(protocol.CmdStop); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	for {
		f, ok := n.queue.Dequeue()
		if !ok {
			break
		}
		n.bridge.HandleFrame(f)
	}
	return firstErr
}

func (n *Node) send(c protocol.Command) error {
	f, err := protocol.EncodeCommand(c)
	if err != nil {
		return err
	}
	return n.can.Transmit(f)
}
