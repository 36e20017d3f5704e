package cadence

import (
	"context"

	"github.com/spf13/viper"
	"github.com/uber-go/tally"
	"go.uber.org/cadence/.gen/go/cadence/workflowserviceclient"
	"go.uber.org/cadence/client"
	"go.uber.org/cadence/workflow"
	"go.uber.org/yarpc"
	"go.uber.org/yarpc/transport/tchannel"
)

const (
	clientName      = "harvest-worker"
	frontendService = "cadence-frontend"
)

// CadenceClient is the domain client used to start and signal demand
// alert workflows from the api and background processes.
type CadenceClient struct {
	client client.Client
}

// BuildCadenceServiceClient dials the cadence frontend at hostPort over
// tchannel and returns its workflow service client.
func BuildCadenceServiceClient(hostPort string) workflowserviceclient.Interface {
	transport, err := tchannel.NewChannelTransport(tchannel.ServiceName(clientName))
	if err != nil {
		panic("failed to create tchannel transport: " + err.Error())
	}

	dispatcher := yarpc.NewDispatcher(yarpc.Config{
		Name: clientName,
		Outbounds: yarpc.Outbounds{
			frontendService: {Unary: transport.NewSingleOutbound(hostPort)},
		},
	})
	if err := dispatcher.Start(); err != nil {
		panic("failed to start yarpc dispatcher: " + err.Error())
	}

	return workflowserviceclient.New(dispatcher.ClientConfig(frontendService))
}

// NewClient builds a CadenceClient from the cadence.* config values.
func NewClient() *CadenceClient {
	service := BuildCadenceServiceClient(viper.GetString("cadence.conn"))

	return &CadenceClient{
		client: client.NewClient(service, viper.GetString("cadence.domain"), &client.Options{
			MetricsScope:  tally.NoopScope,
			DataConverter: NewMsgPackDataConverter(),
		}),
	}
}

func (c *CadenceClient) SignalWithStartWorkflow(ctx context.Context,
	workflowID string, signalName string, signalArg interface{},
	options client.StartWorkflowOptions, workflowFunc interface{}, workflowArgs ...interface{}) (*workflow.Execution, error) {
	return c.client.SignalWithStartWorkflow(ctx, workflowID, signalName, signalArg, options, workflowFunc, workflowArgs...)
}
