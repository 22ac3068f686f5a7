package network

import (
	"context"
	"fmt"

	"github.com/testcontainers/testcontainers-go"
	tcnetwork "github.com/testcontainers/testcontainers-go/network"
)

// Network is a throwaway bridge network shared by the containers of one
// integration suite.
type Network struct {
	network *testcontainers.DockerNetwork
}

// NewNetwork creates an attachable bridge network labelled with project and
// suite so leftovers can be found and pruned.
func NewNetwork(ctx context.Context, project, suite string) (*Network, error) {
	net, err := tcnetwork.New(ctx,
		tcnetwork.WithDriver(testcontainers.Bridge),
		tcnetwork.WithAttachable(),
		tcnetwork.WithLabels(map[string]string{
			"project": project,
			"suite":   suite,
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create docker network: %w", err)
	}

	return &Network{network: net}, nil
}

func (n *Network) Name() string {
	return n.network.Name
}

// Remove is safe on a nil Network.
func (n *Network) Remove(ctx context.Context) error {
	if n == nil || n.network == nil {
		return nil
	}
	return n.network.Remove(ctx)
}
