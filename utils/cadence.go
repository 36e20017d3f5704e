package utils

import (
	"context"
	"fmt"
	"time"

	cadenceClient "go.uber.org/cadence/client"

	"github.com/anjith1/harvest-demand-link/external/cadence"
)

// FIXME: there will be an import cycle if we use `github.com/anjith1/harvest-demand-link/background/alert`
const TaskListName = "harvest-demand-alert-tasks"

// TriggerDemandAlert is a helper function to make sure a demand alert
// workflow is running for each of the given farmers.
func TriggerDemandAlert(client cadence.CadenceClient, c context.Context, accountNumbers []string) error {
	for _, a := range accountNumbers {
		if _, err := client.SignalWithStartWorkflow(c,
			fmt.Sprintf("demand-alert-%s", a), "demandCheckSignal", nil,
			cadenceClient.StartWorkflowOptions{
				ID:                           fmt.Sprintf("demand-alert-%s", a),
				TaskList:                     TaskListName,
				ExecutionStartToCloseTimeout: time.Hour,
				WorkflowIDReusePolicy:        cadenceClient.WorkflowIDReusePolicyAllowDuplicate,
			}, "DemandAlertWorkflow", a); err != nil {
			return err
		}
	}
	return nil
}
